// Package notifications keeps the short list of toast messages shown to
// dispatchers and riders. Each entry expires on its own timer.
package notifications

import (
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"speedial/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	// DefaultCapacity is how many notifications are kept, newest first.
	DefaultCapacity = 5
	// DefaultTTL is how long a notification lives after it was pushed.
	DefaultTTL = 5 * time.Second
)

var (
	ErrClockIsRequired = errors.New("clock is required")
	ErrTTLIsInvalid    = errors.New("notification ttl must be positive")
)

type entry struct {
	notification notification.Notification
	timer        clockwork.Timer
}

// Queue is a bounded, newest-first list of notifications. It is safe for
// concurrent use.
type Queue struct {
	mu       sync.Mutex
	clock    clockwork.Clock
	ttl      time.Duration
	capacity int
	entries  []entry
	logger   *slog.Logger
}

func NewQueue(clk clockwork.Clock, ttl time.Duration, logger *slog.Logger) (*Queue, error) {
	if clk == nil {
		return nil, ErrClockIsRequired
	}
	if ttl <= 0 {
		return nil, ErrTTLIsInvalid
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Queue{
		clock:    clk,
		ttl:      ttl,
		capacity: DefaultCapacity,
		logger:   logger.With("component", "notifications"),
	}, nil
}

// Push prepends a notification and drops the oldest entries beyond capacity.
// Dropped entries have their timers stopped.
func (q *Queue) Push(message string, severity notification.Severity) {
	n, err := notification.New(message, severity, q.clock.Now())
	if err != nil {
		q.logger.Warn("Dropping invalid notification", "error", err)
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	id := n.ID()
	timer := q.clock.AfterFunc(q.ttl, func() { q.expire(id) })
	q.entries = slices.Insert(q.entries, 0, entry{notification: n, timer: timer})

	if len(q.entries) > q.capacity {
		for _, dropped := range q.entries[q.capacity:] {
			dropped.timer.Stop()
		}
		q.entries = slices.Clip(q.entries[:q.capacity])
	}

	q.logger.Debug("Notification pushed", "id", id, "severity", severity, "message", message)
}

// List returns the current notifications, newest first.
func (q *Queue) List() []notification.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]notification.Notification, 0, len(q.entries))
	for _, e := range q.entries {
		out = append(out, e.notification)
	}
	return out
}

// Dismiss removes a notification immediately and cancels its timer. It
// reports whether the id was present.
func (q *Queue) Dismiss(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return false
	}
	q.entries[i].timer.Stop()
	q.entries = slices.Delete(q.entries, i, i+1)
	return true
}

// Close stops every pending timer and empties the queue.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		e.timer.Stop()
	}
	q.entries = nil
}

func (q *Queue) expire(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i := q.indexOf(id); i >= 0 {
		q.entries = slices.Delete(q.entries, i, i+1)
	}
}

func (q *Queue) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(q.entries, func(e entry) bool {
		return e.notification.ID() == id
	})
}
