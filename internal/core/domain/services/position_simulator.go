package services

import (
	"errors"
	"math"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
)

const (
	// StepDegrees is how far an en-route courier advances per tick.
	StepDegrees = 0.0005
	// ArrivalThreshold is the distance under which a courier is considered arrived.
	ArrivalThreshold = 0.001
	// JitterSpan is the width of the idle jitter window; each axis moves by
	// (rand-0.5)*JitterSpan.
	JitterSpan = 0.0001
)

var ErrRandomSourceIsRequired = errors.New("random source is required")

// PositionSimulator computes courier positions for one simulation tick.
// It is a visual approximation: couriers move in straight lines on a flat
// degree plane and roads are ignored.
type PositionSimulator struct {
	rnd kernel.RandomSource
}

func NewPositionSimulator(rnd kernel.RandomSource) (*PositionSimulator, error) {
	if rnd == nil {
		return nil, ErrRandomSourceIsRequired
	}
	return &PositionSimulator{rnd: rnd}, nil
}

// Tick returns the couriers after one step. Inputs are not modified; every
// returned courier is a fresh copy in the same order as couriers.
//
//   - offline couriers are copied unchanged
//   - a courier carrying an In Transit order steps toward its delivery point,
//     or holds still once within ArrivalThreshold
//   - any other courier jitters in place
func (s *PositionSimulator) Tick(orders []*order.Order, couriers []*courier.Courier) []*courier.Courier {
	next := make([]*courier.Courier, 0, len(couriers))
	for _, c := range couriers {
		moved := c.Clone()
		if !moved.IsOffline() {
			if target, ok := s.target(moved, orders); ok {
				s.advance(moved, target)
			} else {
				s.jitter(moved)
			}
		}
		next = append(next, moved)
	}
	return next
}

func (s *PositionSimulator) target(c *courier.Courier, orders []*order.Order) (kernel.Location, bool) {
	for _, o := range orders {
		if o.Status() == order.InTransit && o.IsBoundTo(c.ID()) {
			return o.Route().Delivery, true
		}
	}
	return kernel.Location{}, false
}

func (s *PositionSimulator) advance(c *courier.Courier, target kernel.Location) {
	dist, err := c.Location().Distance(target)
	if err != nil || dist < ArrivalThreshold || math.IsInf(dist, 0) || math.IsNaN(dist) {
		return
	}

	dLat := (target.Lat() - c.Location().Lat()) / dist * StepDegrees
	dLng := (target.Lng() - c.Location().Lng()) / dist * StepDegrees
	s.offset(c, dLat, dLng)
}

func (s *PositionSimulator) jitter(c *courier.Courier) {
	dLat := (s.rnd.Float64() - 0.5) * JitterSpan
	dLng := (s.rnd.Float64() - 0.5) * JitterSpan
	s.offset(c, dLat, dLng)
}

// offset keeps the courier in place when the move would leave valid coordinates.
func (s *PositionSimulator) offset(c *courier.Courier, dLat, dLng float64) {
	loc, err := c.Location().Offset(dLat, dLng)
	if err != nil {
		return
	}
	_ = c.MoveTo(loc)
}
