// Package advisor wraps the generative text service with the dispatch
// prompts, response validation and static fallbacks. Requests are keyed by
// subject and only the latest request per subject updates the cached answer.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"
	"speedial/internal/pkg/keyed"

	"github.com/jonboulle/clockwork"
)

const (
	fleetKey   = "fleet"
	trafficKey = "traffic"
	etaKey     = "eta:"
	messageKey = "message:"
)

var (
	ErrGeneratorIsRequired = errors.New("text generator is required")
	errEmptyResponse       = errors.New("empty response")
)

// Advisor produces fleet insights, traffic reports, ETA predictions and
// customer messages. It never returns an error: failures are logged and
// replaced by fallbacks.
type Advisor struct {
	generator ports.TextGenerator
	clock     clockwork.Clock
	tasks     keyed.Group
	logger    *slog.Logger

	mu       sync.RWMutex
	insights []Insight
	traffic  TrafficReport
	etas     map[string]ETAPrediction
}

func NewAdvisor(generator ports.TextGenerator, clk clockwork.Clock, logger *slog.Logger) (*Advisor, error) {
	if generator == nil {
		return nil, ErrGeneratorIsRequired
	}
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Advisor{
		generator: generator,
		clock:     clk,
		logger:    logger.With("component", "advisor"),
		traffic:   InitialTraffic,
		etas:      make(map[string]ETAPrediction),
	}, nil
}

// FleetInsights asks for strategy tips over the current orders and couriers.
func (a *Advisor) FleetInsights(ctx context.Context, orders []order.State, couriers []courier.State) []Insight {
	result, _ := keyed.Run(ctx, &a.tasks, fleetKey, func(ctx context.Context) []Insight {
		req, err := insightsRequest(orders, couriers)
		if err != nil {
			a.logger.Error("Failed to build insights prompt", "error", err)
			return slices.Clone(FallbackInsights)
		}

		var resp struct {
			Insights []Insight `json:"insights"`
		}
		if err = a.generateJSON(ctx, req, &resp); err == nil {
			err = validateInsights(resp.Insights)
		}
		if err != nil {
			a.logger.Warn("Fleet insights unavailable, using fallback", "error", err)
			return slices.Clone(FallbackInsights)
		}
		return resp.Insights
	}, func(v []Insight) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.insights = slices.Clone(v)
	})
	return result
}

// Insights returns the latest published insights, or nil before the first request.
func (a *Advisor) Insights() []Insight {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.insights)
}

// RefreshTraffic asks for a new traffic report and caches it.
func (a *Advisor) RefreshTraffic(ctx context.Context) TrafficReport {
	result, _ := keyed.Run(ctx, &a.tasks, trafficKey, func(ctx context.Context) TrafficReport {
		var report TrafficReport
		err := a.generateJSON(ctx, trafficRequest(a.clock.Now()), &report)
		switch {
		case errors.Is(err, errEmptyResponse):
			a.logger.Warn("Empty traffic report, using fallback")
			return EmptyTraffic
		case err == nil:
			err = report.validate()
		}
		if err != nil {
			a.logger.Warn("Traffic report unavailable, using fallback", "error", err)
			return FailedTraffic
		}
		return report
	}, func(v TrafficReport) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.traffic = v
	})
	return result
}

// Traffic returns the latest published traffic report.
func (a *Advisor) Traffic() TrafficReport {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.traffic
}

// PredictETA asks for the remaining delivery time of o. c is the courier
// carrying the order, or nil if none is assigned yet.
func (a *Advisor) PredictETA(ctx context.Context, o order.State, c *courier.State) ETAPrediction {
	result, _ := keyed.Run(ctx, &a.tasks, etaKey+o.ID, func(ctx context.Context) ETAPrediction {
		var p ETAPrediction
		err := a.generateJSON(ctx, etaRequest(o, c, a.clock.Now()), &p)
		switch {
		case errors.Is(err, errEmptyResponse):
			a.logger.Warn("Empty ETA prediction, using fallback", "orderId", o.ID)
			return EmptyETA
		case err == nil:
			err = p.validate()
		}
		if err != nil {
			a.logger.Warn("ETA prediction unavailable, using fallback", "orderId", o.ID, "error", err)
			return FailedETA
		}
		return p
	}, func(v ETAPrediction) {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.etas[o.ID] = v
	})
	return result
}

// ETA returns the latest published prediction for an order.
func (a *Advisor) ETA(orderID string) (ETAPrediction, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	p, ok := a.etas[orderID]
	return p, ok
}

// ETAs returns every published prediction keyed by order id.
func (a *Advisor) ETAs() map[string]ETAPrediction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return maps.Clone(a.etas)
}

// OrderUpdateMessage writes a customer facing message about a status change.
func (a *Advisor) OrderUpdateMessage(ctx context.Context, orderID string, status order.Status) string {
	result, _ := keyed.Run(ctx, &a.tasks, messageKey+orderID, func(ctx context.Context) string {
		text, err := a.generator.Generate(ctx, messageRequest(orderID, status))
		if err == nil && strings.TrimSpace(text) == "" {
			err = errEmptyResponse
		}
		if err != nil {
			a.logger.Warn("Order message unavailable, using fallback", "orderId", orderID, "error", err)
			return fmt.Sprintf("Order %s is now %s.", orderID, status)
		}
		return strings.TrimSpace(text)
	}, func(string) {})
	return result
}

// Close cancels every in-flight request.
func (a *Advisor) Close() {
	a.tasks.Close()
}

func (a *Advisor) generateJSON(ctx context.Context, req ports.GenerateRequest, out any) error {
	text, err := a.generator.Generate(ctx, req)
	if err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return errEmptyResponse
	}

	if err = json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	return nil
}

func validateInsights(insights []Insight) error {
	if len(insights) == 0 {
		return errEmptyResponse
	}
	for _, i := range insights {
		if err := i.validate(); err != nil {
			return err
		}
	}
	return nil
}
