package kernel

import (
	"fmt"
	"strings"

	"speedial/internal/pkg/errs"
)

// Hub is one of the three regional home bases couriers register to.
type Hub string

const (
	HubAbuja  Hub = "ABUJA"
	HubKaduna Hub = "KADUNA"
	HubKano   Hub = "KANO"
)

type hubInfo struct {
	code    string
	base    Location
	dropOff Location
}

func hubs() map[Hub]hubInfo {
	return map[Hub]hubInfo{
		HubAbuja: {
			code:    "ABJ",
			base:    MustLocation(9.0765, 7.3986),
			dropOff: MustLocation(9.1176, 7.4042),
		},
		HubKaduna: {
			code:    "KAD",
			base:    MustLocation(10.5105, 7.4165),
			dropOff: MustLocation(10.5264, 7.4388),
		},
		HubKano: {
			code:    "KAN",
			base:    MustLocation(12.0022, 8.5920),
			dropOff: MustLocation(12.0150, 8.5300),
		},
	}
}

// Hubs lists every hub in display order.
func Hubs() []Hub {
	return []Hub{HubAbuja, HubKaduna, HubKano}
}

// ParseHub accepts a hub name in any letter case.
func ParseHub(s string) (Hub, error) {
	h := Hub(strings.ToUpper(strings.TrimSpace(s)))
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

func (h Hub) Validate() error {
	if _, ok := hubs()[h]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("hub", fmt.Errorf("%q is not a known hub", string(h)))
	}
	return nil
}

// Code is the three letter locality code embedded in order ids (ABJ, KAD, KAN).
func (h Hub) Code() string {
	return hubs()[h].code
}

// Location is the fixed coordinate of the hub; new couriers start here and
// package bookings are picked up here.
func (h Hub) Location() Location {
	return hubs()[h].base
}

// DropOff is the default delivery coordinate for bookings made in the hub.
func (h Hub) DropOff() Location {
	return hubs()[h].dropOff
}

func (h Hub) String() string {
	return string(h)
}
