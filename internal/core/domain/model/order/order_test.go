package order_test

import (
	"testing"
	"time"

	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func abujaRoute() order.Route {
	return order.Route{
		PickupAddress:   "Block 4, Wuse II, ABUJA",
		DeliveryAddress: "Plot 12, Gwarinpa, ABUJA",
		Pickup:          kernel.HubAbuja.Location(),
		Delivery:        kernel.HubAbuja.DropOff(),
	}
}

func newPending(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewPackageOrder("SD-ABJ-120", "Customer", abujaRoute(), "2kg", order.PriorityMedium, createdAt)
	require.NoError(t, err)
	return o
}

func TestNewPackageOrder(t *testing.T) {
	t.Run("should create pending package order", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "SD-ABJ-120", o.ID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.TypePackage, o.Type())
		assert.Equal(t, "2kg", o.Weight())
		assert.Equal(t, order.PriorityMedium, o.Priority())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Empty(t, o.ETA())
		_, bound := o.Courier()
		assert.False(t, bound)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		o, err := order.NewPackageOrder("", "", order.Route{}, "", order.Priority("urgent"), time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pickupAddress")
		assert.Contains(t, err.Error(), "customerName")
		assert.Contains(t, err.Error(), "urgent")
	})
}

func TestNewFoodOrder(t *testing.T) {
	t.Run("should create high priority food order", func(t *testing.T) {
		o, err := order.NewFoodOrder("SD-FOOD-7", "Customer", abujaRoute(), []string{"Spicy Suya Platter"}, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.TypeFood, o.Type())
		assert.Equal(t, order.PriorityHigh, o.Priority())
		assert.Equal(t, "1kg", o.Weight())
		assert.Equal(t, []string{"Spicy Suya Platter"}, o.Items())
	})

	t.Run("should reject an empty cart", func(t *testing.T) {
		_, err := order.NewFoodOrder("SD-FOOD-7", "Customer", abujaRoute(), nil, createdAt)

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should bind courier and default eta", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.Assign("RID-02"))

		assert.Equal(t, order.Assigned, o.Status())
		assert.Equal(t, order.DefaultETA, o.ETA())
		id, bound := o.Courier()
		assert.True(t, bound)
		assert.Equal(t, "RID-02", id)
		assert.True(t, o.IsBoundTo("RID-02"))
	})

	t.Run("should refuse non pending orders", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Assign("RID-02"))

		err := o.Assign("RID-03")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, o.IsBoundTo("RID-02"))
	})

	t.Run("should require courier id", func(t *testing.T) {
		err := newPending(t).Assign(" ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should walk the rider ladder", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Assign("RID-02"))

		for st, ok := o.Status().Next(); ok; st, ok = o.Status().Next() {
			require.NoError(t, o.UpdateStatus(st))
		}

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.IsBoundTo("RID-02"), "delivered orders keep their courier")
	})

	t.Run("should accept rewriting the same status", func(t *testing.T) {
		o := newPending(t)

		require.NoError(t, o.UpdateStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse courier statuses without a courier", func(t *testing.T) {
		o := newPending(t)

		err := o.UpdateStatus(order.InTransit)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse going back to pending once assigned", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Assign("RID-02"))

		require.Error(t, o.UpdateStatus(order.Pending))
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("should clear courier on cancel", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Assign("RID-02"))

		require.NoError(t, o.UpdateStatus(order.Cancelled))

		_, bound := o.Courier()
		assert.False(t, bound)
		assert.Error(t, o.UpdateStatus(order.Assigned), "cancelled is final")
	})

	t.Run("should refuse leaving delivered", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.Assign("RID-02"))
		require.NoError(t, o.UpdateStatus(order.Delivered))

		require.Error(t, o.UpdateStatus(order.Cancelled))
		require.NoError(t, o.UpdateStatus(order.Delivered))
	})
}

func TestRestoreOrder(t *testing.T) {
	state := order.State{
		ID:           "SD-ABJ-001",
		CustomerName: "Garki Trade Center",
		Route:        abujaRoute(),
		Status:       order.InTransit,
		CreatedAt:    createdAt,
		CourierID:    "RID-01",
		Weight:       "2kg",
		Priority:     order.PriorityHigh,
		ETA:          "25 mins",
	}

	t.Run("should round trip through state", func(t *testing.T) {
		o, err := order.RestoreOrder(state)

		require.NoError(t, err)
		got := o.State()
		state.Type = order.TypePackage
		assert.Equal(t, state, got)
	})

	t.Run("should enforce the courier invariant", func(t *testing.T) {
		broken := state
		broken.CourierID = ""

		_, err := order.RestoreOrder(broken)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_CloneIsDetached(t *testing.T) {
	o, err := order.NewFoodOrder("SD-FOOD-1", "Customer", abujaRoute(), []string{"Kilishi Special"}, createdAt)
	require.NoError(t, err)

	c := o.Clone()
	require.NoError(t, c.Assign("RID-03"))

	assert.Equal(t, order.Pending, o.Status())
	_, bound := o.Courier()
	assert.False(t, bound)
}

func TestOrder_BelongsToHub(t *testing.T) {
	o := newPending(t)

	assert.True(t, o.BelongsToHub(kernel.HubAbuja))
	assert.False(t, o.BelongsToHub(kernel.HubKano))
}

func TestOrder_ValidateZeroValue(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
