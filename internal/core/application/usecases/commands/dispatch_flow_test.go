package commands_test

import (
	"testing"

	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A rider registered in KANO takes a KANO booking through the whole ladder.
func TestDispatchFlow_RegisterBookAssignDeliver(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	f.notifier.On("Push", mock.Anything, mock.Anything)

	rnd := fixedRandom{n: 42}

	register, err := commands.NewCreateCourierCommand(
		kernel.NewCourierID(rnd), "Ada", "", courier.VehicleMotorcycle, kernel.HubKano,
	)
	require.NoError(t, err)
	require.NoError(t, commands.NewCreateCourierCommandHandler(f.riderUoW, f.notifier).Handle(ctx, register))

	orderID := kernel.NewOrderID(kernel.HubKano.Code(), rnd)
	book, err := commands.NewCreateOrderCommand(orderID, kernel.HubKano, "Sabon Gari", "Nassarawa GRA", "", "")
	require.NoError(t, err)
	require.NoError(t, commands.NewCreateOrderCommandHandler(f.orderUoW, f.notifier, clockwork.NewFakeClockAt(now)).Handle(ctx, book))

	assign, err := commands.NewAssignCourierCommand(orderID, "RID-42")
	require.NoError(t, err)
	require.NoError(t, commands.NewAssignCourierCommandHandler(f.uow, f.notifier).Handle(ctx, assign))
	assert.Equal(t, courier.StatusBusy, f.courier(t, "RID-42").Status)

	status := order.Assigned
	for {
		next, ok := status.Next()
		if !ok {
			break
		}
		require.NoError(t, updateStatus(t, f, orderID, next))
		status = next
	}

	o := f.order(t, orderID)
	assert.Equal(t, "SD-KAN-42", o.ID)
	assert.Equal(t, order.Delivered, o.Status)
	assert.Equal(t, "RID-42", o.CourierID)
	assert.Equal(t, courier.StatusIdle, f.courier(t, "RID-42").Status)

	f.notifier.AssertCalled(t, "Push", "Order SD-KAN-42 Delivered! Enjoy your items.", mock.Anything)
	f.notifier.AssertNumberOfCalls(t, "Push", 7)
}
