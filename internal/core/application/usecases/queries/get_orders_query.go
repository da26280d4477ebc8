package queries

import (
	"errors"
	"fmt"
	"strings"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// Phase splits orders into live work and history.
type Phase string

const (
	PhaseAll     Phase = ""
	PhaseActive  Phase = "active"
	PhaseHistory Phase = "history"
)

func ParsePhase(s string) (Phase, error) {
	p := Phase(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PhaseAll, PhaseActive, PhaseHistory:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%q is not a valid phase", s))
	}
}

// GetOrdersQuery lists orders, newest first, optionally narrowed to a hub and
// a phase.
//
// Example:
//
//	query, err := NewGetOrdersQuery(kernel.HubKano, PhaseActive)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	hub   kernel.Hub
	phase Phase

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery accepts an empty hub for all hubs.
func NewGetOrdersQuery(hub kernel.Hub, phase Phase) (GetOrdersQuery, error) {
	if hub != "" {
		if err := hub.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if _, err := ParsePhase(string(phase)); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{hub: hub, phase: phase, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
