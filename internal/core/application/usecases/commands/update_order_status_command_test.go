package commands_test

import (
	"testing"

	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand("SD-ABJ-001", order.Delivered)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Delivered, cmd.Status())

	_, err = commands.NewUpdateOrderStatusCommand("", order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.UpdateOrderStatusCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}

func updateStatus(t *testing.T, f fixture, id string, status order.Status) error {
	t.Helper()

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	require.NoError(t, err)
	return commands.NewUpdateOrderStatusCommandHandler(f.uow, f.notifier).Handle(t.Context(), cmd)
}

func TestUpdateOrderStatusCommandHandler_DeliveredReleasesCourier(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("Push", "Order SD-ABJ-001 Delivered! Enjoy your items.", notification.SeveritySuccess).Once()

	require.NoError(t, updateStatus(t, f, "SD-ABJ-001", order.Delivered))

	o := f.order(t, "SD-ABJ-001")
	assert.Equal(t, order.Delivered, o.Status)
	assert.Equal(t, "RID-01", o.CourierID)
	assert.Equal(t, courier.StatusIdle, f.courier(t, "RID-01").Status)
	f.notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_IntermediateStatus(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("Push", "Order SD-ABJ-001 updated to Arrived at Delivery", notification.SeverityInfo).Once()

	require.NoError(t, updateStatus(t, f, "SD-ABJ-001", order.ArrivedDelivery))

	assert.Equal(t, order.ArrivedDelivery, f.order(t, "SD-ABJ-001").Status)
	assert.Equal(t, courier.StatusBusy, f.courier(t, "RID-01").Status)
	f.notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_SameStatusStillNotifies(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("Push", "Order SD-ABJ-001 updated to In Transit", notification.SeverityInfo).Once()

	require.NoError(t, updateStatus(t, f, "SD-ABJ-001", order.InTransit))

	assert.Equal(t, order.InTransit, f.order(t, "SD-ABJ-001").Status)
	f.notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_CancelClearsCourier(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("Push", "Order SD-ABJ-001 updated to Cancelled", notification.SeverityInfo).Once()

	require.NoError(t, updateStatus(t, f, "SD-ABJ-001", order.Cancelled))

	o := f.order(t, "SD-ABJ-001")
	assert.Equal(t, order.Cancelled, o.Status)
	assert.Empty(t, o.CourierID)
	assert.Equal(t, courier.StatusIdle, f.courier(t, "RID-01").Status)
	f.notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_RefusesBrokenBinding(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		prepare func(t *testing.T, f fixture)
		next    order.Status
		message string
		want    order.Status
	}{
		{
			name:    "courier status on a pending order",
			orderID: "SD-KAN-1",
			prepare: func(t *testing.T, f fixture) { f.addPendingOrder(t, "SD-KAN-1", kernel.HubKano) },
			next:    order.InTransit,
			message: "Order SD-KAN-1 cannot move from Pending to In Transit.",
			want:    order.Pending,
		},
		{
			name:    "pending on an assigned order",
			orderID: "SD-ABJ-001",
			prepare: func(*testing.T, fixture) {},
			next:    order.Pending,
			message: "Order SD-ABJ-001 cannot move from In Transit to Pending.",
			want:    order.InTransit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.prepare(t, f)
			f.notifier.On("Push", tt.message, notification.SeverityWarning).Once()

			require.NoError(t, updateStatus(t, f, tt.orderID, tt.next))

			assert.Equal(t, tt.want, f.order(t, tt.orderID).Status)
			f.notifier.AssertExpectations(t)
		})
	}
}

func TestUpdateOrderStatusCommandHandler_FinalStatusIsKept(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("Push", "Order SD-ABJ-001 Delivered! Enjoy your items.", notification.SeveritySuccess).Once()
	f.notifier.On("Push", "Order SD-ABJ-001 cannot move from Delivered to In Transit.", notification.SeverityWarning).Once()

	require.NoError(t, updateStatus(t, f, "SD-ABJ-001", order.Delivered))
	require.NoError(t, updateStatus(t, f, "SD-ABJ-001", order.InTransit))

	assert.Equal(t, order.Delivered, f.order(t, "SD-ABJ-001").Status)
	assert.Equal(t, courier.StatusIdle, f.courier(t, "RID-01").Status)
	f.notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_UnknownOrder(t *testing.T) {
	f := newFixture(t)

	err := updateStatus(t, f, "SD-KAN-404", order.Delivered)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.notifier.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}
