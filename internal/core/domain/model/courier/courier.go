package courier

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"
)

// DefaultRating is the rating every newly registered courier starts with.
const DefaultRating = 5.0

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to register a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
	// ErrCourierIsOffline is returned when an offline courier is asked to take an order.
	ErrCourierIsOffline = errors.New("courier is offline")
)

// Courier represents a rider in the dispatch network.
// It is an aggregate root that owns the rider's identity, home hub, position and
// availability.
//
// Business rules:
//   - Courier must have a non-empty id and name, a known vehicle and a valid location
//   - Hub is optional; couriers registered without one belong to ABUJA
//   - Rating is within [0, 5]
//   - Only idle or busy couriers can be assigned; offline couriers are refused
//
// Example usage:
//
//	c, err := NewCourier("RID-4821", "Ada", "0803", VehicleBicycle, kernel.HubKano)
//	if err != nil {
//	    // Handle construction error
//	}
//	// c is idle at the Kano hub with a 5.0 rating
type Courier struct {
	id       string
	name     string
	phone    string
	vehicle  Vehicle
	hub      kernel.Hub
	location kernel.Location
	status   Status
	rating   float64

	guard guard.ConstructorGuard
}

// State is the flat form of a courier used for seeding and read models.
// An empty Hub means the courier was seeded without one.
type State struct {
	ID       string
	Name     string
	Phone    string
	Vehicle  Vehicle
	Hub      kernel.Hub
	Location kernel.Location
	Status   Status
	Rating   float64
}

// NewCourier registers a rider at a hub.
//
// Business rules applied:
//   - Status starts idle and rating starts at DefaultRating
//   - Location is the hub's fixed coordinate
//   - An empty hub defaults to ABUJA
func NewCourier(id string, name string, phone string, vehicle Vehicle, hub kernel.Hub) (*Courier, error) {
	if hub == "" {
		hub = kernel.HubAbuja
	}

	c := &Courier{
		phone:  strings.TrimSpace(phone),
		status: StatusIdle,
		rating: DefaultRating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setVehicle(vehicle),
		c.setHub(hub),
	); err != nil {
		return nil, err
	}

	c.location = hub.Location()
	return c, nil
}

// RestoreCourier rebuilds a courier from its flat state, for example from the
// seed document.
func RestoreCourier(s State) (*Courier, error) {
	c := &Courier{
		phone: s.Phone,
		guard: guard.NewConstructorGuard(),
	}

	var hubErr error
	if s.Hub != "" {
		hubErr = c.setHub(s.Hub)
	}

	if err := errors.Join(
		c.setID(s.ID),
		c.setName(s.Name),
		c.setVehicle(s.Vehicle),
		hubErr,
		c.setLocation(s.Location),
		c.setStatus(s.Status),
		c.setRating(s.Rating),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the courier was built by one of its constructors.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() string {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) Vehicle() Vehicle {
	return c.vehicle
}

// Hub returns the courier's home hub and whether one was recorded.
func (c *Courier) Hub() (kernel.Hub, bool) {
	return c.hub, c.hub != ""
}

func (c *Courier) Location() kernel.Location {
	return c.location
}

func (c *Courier) Status() Status {
	return c.status
}

func (c *Courier) Rating() float64 {
	return c.rating
}

func (c *Courier) IsOffline() bool {
	return c.status == StatusOffline
}

// State returns the flat form of the courier.
func (c *Courier) State() State {
	return State{
		ID:       c.id,
		Name:     c.name,
		Phone:    c.phone,
		Vehicle:  c.vehicle,
		Hub:      c.hub,
		Location: c.location,
		Status:   c.status,
		Rating:   c.rating,
	}
}

// Clone returns an independent copy. Courier holds only values, so a shallow
// copy is enough.
func (c *Courier) Clone() *Courier {
	cp := *c
	return &cp
}

// Assign marks the courier busy with a new order.
//
// Business rules:
//   - Offline couriers cannot be assigned (ErrCourierIsOffline)
//   - Busy couriers can be assigned again; the courier simply stays busy
func (c *Courier) Assign() error {
	if c.IsOffline() {
		return ErrCourierIsOffline
	}
	c.status = StatusBusy
	return nil
}

// Release makes the courier idle after a delivery. Offline couriers stay offline.
func (c *Courier) Release() {
	if c.IsOffline() {
		return
	}
	c.status = StatusIdle
}

// SetAvailability switches a courier online (idle) or offline.
func (c *Courier) SetAvailability(online bool) {
	if online {
		c.status = StatusIdle
		return
	}
	c.status = StatusOffline
}

// MoveTo places the courier at loc. Offline couriers do not move.
func (c *Courier) MoveTo(loc kernel.Location) error {
	if c.IsOffline() {
		return ErrCourierIsOffline
	}
	return c.setLocation(loc)
}

func (c *Courier) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *Courier) setVehicle(vehicle Vehicle) error {
	v, err := ParseVehicle(string(vehicle))
	if err != nil {
		return err
	}
	c.vehicle = v
	return nil
}

func (c *Courier) setHub(hub kernel.Hub) error {
	if err := hub.Validate(); err != nil {
		return err
	}
	c.hub = hub
	return nil
}

func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < 0 || rating > DefaultRating {
		return errs.NewValueIsOutOfRangeErrorWithCause("rating", rating, 0, DefaultRating,
			fmt.Errorf("courier %s", c.id))
	}
	c.rating = rating
	return nil
}
