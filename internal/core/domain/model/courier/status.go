package courier

import (
	"fmt"
	"strings"

	"speedial/internal/pkg/errs"
)

// Status is the availability of a courier.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusBusy    Status = "busy"
	StatusOffline Status = "offline"
)

// Statuses lists every courier status.
func Statuses() []Status {
	return []Status{StatusIdle, StatusBusy, StatusOffline}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

func (s Status) Validate() error {
	switch s {
	case StatusIdle, StatusBusy, StatusOffline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid courier status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// Vehicle is what the courier rides.
type Vehicle string

const (
	VehicleMotorcycle Vehicle = "Motorcycle"
	VehicleBicycle    Vehicle = "Bicycle"
	VehicleCar        Vehicle = "Car"
)

// ParseVehicle accepts a vehicle name in any letter case.
func ParseVehicle(s string) (Vehicle, error) {
	trimmed := strings.TrimSpace(s)
	for _, v := range []Vehicle{VehicleMotorcycle, VehicleBicycle, VehicleCar} {
		if strings.EqualFold(string(v), trimmed) {
			return v, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("vehicle", fmt.Errorf("%q is not a valid vehicle", s))
}

func (v Vehicle) Validate() error {
	_, err := ParseVehicle(string(v))
	return err
}
