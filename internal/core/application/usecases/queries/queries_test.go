package queries_test

import (
	"testing"
	"time"

	"speedial/internal/adapters/out/memory"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/catalogue"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/kernel"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type QueriesTestSuite struct {
	suite.Suite
	store *memory.Store
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

// SetupTest seeds the demo data and adds:
//   - SD-KAN-10 Pending
//   - SD-KAN-11 Delivered by RID-03
//   - SD-FOOD-12 Cancelled food order
//   - RID-7 registered in KANO and offline
func (suite *QueriesTestSuite) SetupTest() {
	seed, err := memory.DefaultSeed(now)
	suite.Require().NoError(err)
	suite.store, err = memory.NewStore(seed)
	suite.Require().NoError(err)

	ctx := suite.T().Context()
	uow := memory.NewUnitOfWorkFactory(suite.store).Create()
	suite.Require().NoError(uow.Begin(ctx))

	kanoRoute := order.Route{
		PickupAddress:   "Sabon Gari, KANO",
		DeliveryAddress: "Nassarawa, KANO",
		Pickup:          kernel.HubKano.Location(),
		Delivery:        kernel.HubKano.DropOff(),
	}

	pending, err := order.NewPackageOrder("SD-KAN-10", "Customer", kanoRoute, "2kg", order.PriorityMedium, now)
	suite.Require().NoError(err)

	delivered, err := order.NewPackageOrder("SD-KAN-11", "Customer", kanoRoute, "2kg", order.PriorityLow, now)
	suite.Require().NoError(err)
	suite.Require().NoError(delivered.Assign("RID-03"))
	suite.Require().NoError(delivered.UpdateStatus(order.Delivered))

	food, err := order.NewFoodOrder("SD-FOOD-12", "Customer", order.Route{
		PickupAddress:   "Arewa Grill Central, Wuse II, Abuja",
		DeliveryAddress: "Wuse II, Abuja",
		Pickup:          kernel.HubAbuja.Location(),
		Delivery:        kernel.MustLocation(9.0815, 7.4200),
	}, []string{"Kilishi Special", "Spicy Suya Platter", "Spicy Suya Platter", "Discontinued Wrap"}, now)
	suite.Require().NoError(err)
	suite.Require().NoError(food.UpdateStatus(order.Cancelled))

	for _, o := range []*order.Order{pending, delivered, food} {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	}

	ada, err := courier.NewCourier("RID-7", "Ada", "", courier.VehicleCar, kernel.HubKano)
	suite.Require().NoError(err)
	ada.SetAvailability(false)
	suite.Require().NoError(uow.CourierRepository().Add(ctx, ada))

	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesTestSuite) orderIDs(resp []queries.OrderResponse) []string {
	ids := make([]string, 0, len(resp))
	for _, o := range resp {
		ids = append(ids, o.ID)
	}
	return ids
}

func (suite *QueriesTestSuite) TestGetOrders() {
	handler := queries.NewGetOrdersQueryHandler(suite.store)

	tests := []struct {
		name  string
		hub   kernel.Hub
		phase queries.Phase
		want  []string
	}{
		{name: "everything newest first", want: []string{"SD-FOOD-12", "SD-KAN-11", "SD-KAN-10", "SD-ABJ-001"}},
		{name: "hub", hub: kernel.HubKano, want: []string{"SD-KAN-11", "SD-KAN-10"}},
		{name: "abuja uses its locality code", hub: kernel.HubAbuja, want: []string{"SD-ABJ-001"}},
		{name: "active", phase: queries.PhaseActive, want: []string{"SD-KAN-10", "SD-ABJ-001"}},
		{name: "history", phase: queries.PhaseHistory, want: []string{"SD-FOOD-12", "SD-KAN-11"}},
		{name: "hub and phase", hub: kernel.HubKano, phase: queries.PhaseActive, want: []string{"SD-KAN-10"}},
		{name: "empty hub", hub: kernel.HubKaduna, want: []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewGetOrdersQuery(tt.hub, tt.phase)
			suite.Require().NoError(err)

			resp, err := handler.Handle(suite.T().Context(), query)

			suite.Require().NoError(err)
			suite.Equal(tt.want, suite.orderIDs(resp))
		})
	}
}

func (suite *QueriesTestSuite) TestGetOrders_Projection() {
	query, err := queries.NewGetOrdersQuery(kernel.HubAbuja, queries.PhaseAll)
	suite.Require().NoError(err)

	resp, err := queries.NewGetOrdersQueryHandler(suite.store).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal(order.InTransit, resp[0].Status)
	suite.Equal(70, resp[0].Progress)
	suite.Equal("RID-01", resp[0].CourierID)
	suite.Equal("Block 4, Wuse II, Abuja", resp[0].PickupAddress)
}

func (suite *QueriesTestSuite) TestGetOrdersQuery_Invalid() {
	_, err := queries.NewGetOrdersQuery(kernel.Hub("LAGOS"), "")
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetOrdersQuery("", queries.Phase("soon"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	phase, err := queries.ParsePhase(" History ")
	suite.Require().NoError(err)
	suite.Equal(queries.PhaseHistory, phase)

	_, err = queries.NewGetOrdersQueryHandler(suite.store).Handle(suite.T().Context(), queries.GetOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func (suite *QueriesTestSuite) TestGetCouriers() {
	handler := queries.NewGetCouriersQueryHandler(suite.store)

	tests := []struct {
		name   string
		hub    kernel.Hub
		status courier.Status
		want   []string
	}{
		{name: "everything in registration order", want: []string{"RID-01", "RID-02", "RID-03", "RID-7"}},
		{name: "seeded couriers have no hub", hub: kernel.HubKano, want: []string{"RID-7"}},
		{name: "status", status: courier.StatusIdle, want: []string{"RID-02", "RID-03"}},
		{name: "hub and status", hub: kernel.HubKano, status: courier.StatusIdle, want: []string{}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			query, err := queries.NewGetCouriersQuery(tt.hub, tt.status)
			suite.Require().NoError(err)

			resp, err := handler.Handle(suite.T().Context(), query)

			suite.Require().NoError(err)
			ids := make([]string, 0, len(resp))
			for _, c := range resp {
				ids = append(ids, c.ID)
			}
			suite.Equal(tt.want, ids)
		})
	}

	_, err := queries.NewGetCouriersQuery(kernel.Hub("LAGOS"), courier.Status("asleep"))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *QueriesTestSuite) TestGetFleetStats() {
	resp, err := queries.NewGetFleetStatsQueryHandler(suite.store).
		Handle(suite.T().Context(), queries.NewGetFleetStatsQuery())

	suite.Require().NoError(err)
	suite.Equal(queries.FleetStatsResponse{
		LiveOrders:  3,
		Available:   2,
		ActiveFleet: 3,
	}, resp)
}

func (suite *QueriesTestSuite) TestGetRiderTask() {
	handler := queries.NewGetRiderTaskQueryHandler(suite.store)

	suite.Run("rider with a task", func() {
		query, err := queries.NewGetRiderTaskQuery("RID-01")
		suite.Require().NoError(err)

		resp, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Equal("Abubakar Sadiq", resp.Rider.Name)
		suite.Require().NotNil(resp.Task)
		suite.Equal("SD-ABJ-001", resp.Task.ID)
		suite.Equal(order.ArrivedDelivery, resp.NextStatus)
	})

	suite.Run("delivered orders are not tasks", func() {
		query, err := queries.NewGetRiderTaskQuery("RID-03")
		suite.Require().NoError(err)

		resp, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Nil(resp.Task)
		suite.Equal(order.Unknown, resp.NextStatus)
	})

	suite.Run("unknown rider", func() {
		query, err := queries.NewGetRiderTaskQuery("RID-99")
		suite.Require().NoError(err)

		_, err = handler.Handle(suite.T().Context(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesTestSuite) TestGetMarketplace() {
	handler := queries.NewGetMarketplaceQueryHandler(suite.store)

	all, err := queries.NewGetMarketplaceQuery("")
	suite.Require().NoError(err)
	resp, err := handler.Handle(suite.T().Context(), all)
	suite.Require().NoError(err)
	suite.Len(resp, 8)
	suite.Equal("P-001", resp[0].ID)

	drinks, err := queries.NewGetMarketplaceQuery(catalogue.CategoryDrinks)
	suite.Require().NoError(err)
	resp, err = handler.Handle(suite.T().Context(), drinks)
	suite.Require().NoError(err)
	suite.Len(resp, 4)
	for _, p := range resp {
		suite.Equal(catalogue.CategoryDrinks, p.Category)
	}
}

func (suite *QueriesTestSuite) TestGetCartQuote() {
	handler := queries.NewGetCartQuoteQueryHandler(suite.store)

	suite.Run("totals", func() {
		query, err := queries.NewGetCartQuoteQuery([]string{"P-001", "P-003", "P-001"})
		suite.Require().NoError(err)

		resp, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Len(resp.Items, 3)
		suite.Equal(catalogue.Quote{Items: 3, Subtotal: 8200, DispatchFee: 500, Total: 8700}, resp.Quote)
	})

	suite.Run("empty cart", func() {
		query, err := queries.NewGetCartQuoteQuery(nil)
		suite.Require().NoError(err)

		resp, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Empty(resp.Items)
		suite.Equal(catalogue.DispatchFee, resp.Total)
	})

	suite.Run("unknown product", func() {
		query, err := queries.NewGetCartQuoteQuery([]string{"P-404"})
		suite.Require().NoError(err)

		_, err = handler.Handle(suite.T().Context(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *QueriesTestSuite) TestGetReorder() {
	handler := queries.NewGetReorderQueryHandler(suite.store, suite.store)

	suite.Run("food order", func() {
		query, err := queries.NewGetReorderQuery("SD-FOOD-12")
		suite.Require().NoError(err)

		resp, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		ids := make([]string, 0, len(resp))
		for _, p := range resp {
			ids = append(ids, p.ID)
		}
		suite.Equal([]string{"P-001", "P-002"}, ids)
	})

	suite.Run("package order", func() {
		query, err := queries.NewGetReorderQuery("SD-KAN-10")
		suite.Require().NoError(err)

		resp, err := handler.Handle(suite.T().Context(), query)

		suite.Require().NoError(err)
		suite.Empty(resp)
	})

	suite.Run("unknown order", func() {
		query, err := queries.NewGetReorderQuery("SD-FOOD-404")
		suite.Require().NoError(err)

		_, err = handler.Handle(suite.T().Context(), query)

		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}
