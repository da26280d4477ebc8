// Package keyed runs request/response tasks where only the latest task per
// key may publish its result.
package keyed

import (
	"context"
	"sync"
)

// Group tracks the latest task per key. Starting a task for a key cancels the
// context of the task it supersedes. The zero value is ready to use.
type Group struct {
	mu    sync.Mutex
	seq   uint64
	tasks map[string]*task
}

type task struct {
	token  uint64
	cancel context.CancelFunc
}

// Run calls fn with a context that is cancelled when ctx ends or a newer Run
// starts for the same key. If the run is still the latest when fn returns,
// publish is called with fn's result while the group lock is held and Run
// reports true. A superseded result is returned but never published.
func Run[T any](
	ctx context.Context,
	g *Group,
	key string,
	fn func(ctx context.Context) T,
	publish func(T),
) (T, bool) {
	taskCtx, token := g.start(ctx, key)
	result := fn(taskCtx)
	return result, g.finish(key, token, func() { publish(result) })
}

// Cancel aborts the in-flight task for key, if any.
func (g *Group) Cancel(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t, ok := g.tasks[key]; ok {
		t.cancel()
		delete(g.tasks, key)
	}
}

// Close aborts every in-flight task.
func (g *Group) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, t := range g.tasks {
		t.cancel()
		delete(g.tasks, key)
	}
}

func (g *Group) start(ctx context.Context, key string) (context.Context, uint64) {
	taskCtx, cancel := context.WithCancel(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tasks == nil {
		g.tasks = make(map[string]*task)
	}
	if prev, ok := g.tasks[key]; ok {
		prev.cancel()
	}

	g.seq++
	g.tasks[key] = &task{token: g.seq, cancel: cancel}
	return taskCtx, g.seq
}

func (g *Group) finish(key string, token uint64, publish func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	t, ok := g.tasks[key]
	if !ok || t.token != token {
		return false
	}

	t.cancel()
	delete(g.tasks, key)
	if publish != nil {
		publish()
	}
	return true
}
