package commands_test

import (
	"context"
	"testing"
	"time"

	"speedial/internal/adapters/out/memory"
	"speedial/internal/core/application/usecases/commands"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/notification"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Push(message string, severity notification.Severity) {
	m.Called(message, severity)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id string) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	couriers, _ := args.Get(0).([]*courier.Courier)
	return couriers, args.Error(1)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCourierUoWFactory struct {
	mock.Mock
}

func (m *MockCourierUoWFactory) Create() commands.CourierUoW {
	args := m.Called()
	return args.Get(0).(commands.CourierUoW)
}

// Factories over the in-memory store, narrowed the way the composition root
// narrows them.
type (
	uowFactory        struct{ f *memory.UnitOfWorkFactory }
	orderUoWFactory   struct{ f *memory.UnitOfWorkFactory }
	courierUoWFactory struct{ f *memory.UnitOfWorkFactory }
)

func (u uowFactory) Create() commands.UoW               { return u.f.Create() }
func (u orderUoWFactory) Create() commands.OrderUoW     { return u.f.Create() }
func (u courierUoWFactory) Create() commands.CourierUoW { return u.f.Create() }

type fixture struct {
	store    *memory.Store
	uow      uowFactory
	orderUoW orderUoWFactory
	riderUoW courierUoWFactory
	notifier *MockNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	seed, err := memory.DefaultSeed(now)
	require.NoError(t, err)
	store, err := memory.NewStore(seed)
	require.NoError(t, err)

	factory := memory.NewUnitOfWorkFactory(store)
	return fixture{
		store:    store,
		uow:      uowFactory{factory},
		orderUoW: orderUoWFactory{factory},
		riderUoW: courierUoWFactory{factory},
		notifier: new(MockNotifier),
	}
}

// addPendingOrder stores a Pending package order in hub directly.
func (f fixture) addPendingOrder(t *testing.T, id string, hub kernel.Hub) {
	t.Helper()

	o, err := order.NewPackageOrder(id, "Customer", order.Route{
		PickupAddress:   "Sabon Gari, " + hub.String(),
		DeliveryAddress: "Nassarawa, " + hub.String(),
		Pickup:          hub.Location(),
		Delivery:        hub.DropOff(),
	}, "2kg", order.PriorityMedium, now)
	require.NoError(t, err)

	ctx := t.Context()
	uow := f.uow.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Commit(ctx))
}

// setOffline switches a seeded courier off duty directly.
func (f fixture) setOffline(t *testing.T, id string) {
	t.Helper()

	ctx := t.Context()
	uow := f.uow.Create()
	require.NoError(t, uow.Begin(ctx))
	c, err := uow.CourierRepository().Get(ctx, id)
	require.NoError(t, err)
	c.SetAvailability(false)
	require.NoError(t, uow.CourierRepository().Update(ctx, c))
	require.NoError(t, uow.Commit(ctx))
}

func (f fixture) order(t *testing.T, id string) order.State {
	t.Helper()

	orders, err := f.store.Orders(t.Context())
	require.NoError(t, err)
	for _, o := range orders {
		if o.ID == id {
			return o
		}
	}
	require.Failf(t, "order not found", "id %s", id)
	return order.State{}
}

func (f fixture) courier(t *testing.T, id string) courier.State {
	t.Helper()

	couriers, err := f.store.Couriers(t.Context())
	require.NoError(t, err)
	for _, c := range couriers {
		if c.ID == id {
			return c
		}
	}
	require.Failf(t, "courier not found", "id %s", id)
	return courier.State{}
}

type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(int) int     { return r.n }
