package services_test

import (
	"testing"
	"time"

	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// fixedRandom replays floats in order and wraps around.
type fixedRandom struct {
	floats []float64
	next   int
}

func (r *fixedRandom) Float64() float64 {
	f := r.floats[r.next%len(r.floats)]
	r.next++
	return f
}

func (r *fixedRandom) IntN(n int) int {
	return 0
}

func newPendingOrder(t *testing.T, id string, hub kernel.Hub) *order.Order {
	t.Helper()
	o, err := order.NewPackageOrder(id, "Customer", order.Route{
		PickupAddress:   "Market, " + hub.String(),
		DeliveryAddress: "Estate, " + hub.String(),
		Pickup:          hub.Location(),
		Delivery:        hub.DropOff(),
	}, "2kg", order.PriorityMedium, createdAt)
	require.NoError(t, err)
	return o
}

func restoreOrder(t *testing.T, id string, status order.Status, courierID string, delivery kernel.Location) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.State{
		ID:           id,
		CustomerName: "Garki Trade Center",
		Route: order.Route{
			PickupAddress:   "Block 4, Wuse II, Abuja",
			DeliveryAddress: "Plot 12, Gwarinpa, Abuja",
			Pickup:          kernel.MustLocation(9.0765, 7.3986),
			Delivery:        delivery,
		},
		Status:    status,
		CreatedAt: createdAt,
		CourierID: courierID,
		Weight:    "2kg",
		Priority:  order.PriorityHigh,
	})
	require.NoError(t, err)
	return o
}

func restoreCourier(t *testing.T, id string, status courier.Status, loc kernel.Location) *courier.Courier {
	t.Helper()
	c, err := courier.RestoreCourier(courier.State{
		ID:       id,
		Name:     "Rider " + id,
		Vehicle:  courier.VehicleMotorcycle,
		Location: loc,
		Status:   status,
		Rating:   4.8,
	})
	require.NoError(t, err)
	return c
}
