package queries_test

import (
	"context"

	"speedial/internal/core/application/advisor"
	"speedial/internal/core/application/usecases/queries"
	"speedial/internal/core/domain/model/courier"
	"speedial/internal/core/domain/model/order"
	"speedial/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) PredictETA(ctx context.Context, o order.State, c *courier.State) advisor.ETAPrediction {
	args := m.Called(ctx, o, c)
	return args.Get(0).(advisor.ETAPrediction)
}

func (m *MockAdvisor) OrderUpdateMessage(ctx context.Context, orderID string, status order.Status) string {
	args := m.Called(ctx, orderID, status)
	return args.String(0)
}

func (m *MockAdvisor) FleetInsights(ctx context.Context, orders []order.State, couriers []courier.State) []advisor.Insight {
	args := m.Called(ctx, orders, couriers)
	return args.Get(0).([]advisor.Insight)
}

func (m *MockAdvisor) Insights() []advisor.Insight {
	args := m.Called()
	insights, _ := args.Get(0).([]advisor.Insight)
	return insights
}

func (suite *QueriesTestSuite) TestGetOrderETA() {
	ctx := suite.T().Context()
	adv := new(MockAdvisor)
	prediction := advisor.ETAPrediction{Prediction: "12 mins", Context: "Clear Gwarinpa road"}
	adv.On("PredictETA", ctx,
		mock.MatchedBy(func(o order.State) bool { return o.ID == "SD-ABJ-001" }),
		mock.MatchedBy(func(c *courier.State) bool { return c != nil && c.ID == "RID-01" }),
	).Return(prediction).Once()
	adv.On("PredictETA", ctx,
		mock.MatchedBy(func(o order.State) bool { return o.ID == "SD-KAN-10" }),
		(*courier.State)(nil),
	).Return(advisor.EmptyETA).Once()

	handler := queries.NewGetOrderETAQueryHandler(suite.store, adv)

	query, err := queries.NewGetOrderETAQuery("SD-ABJ-001")
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(prediction, got)

	query, err = queries.NewGetOrderETAQuery("SD-KAN-10")
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(advisor.EmptyETA, got)

	query, err = queries.NewGetOrderETAQuery("SD-KAN-404")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	adv.AssertExpectations(suite.T())
}

func (suite *QueriesTestSuite) TestGetOrderMessage() {
	ctx := suite.T().Context()
	adv := new(MockAdvisor)
	adv.On("OrderUpdateMessage", ctx, "SD-KAN-11", order.Delivered).Return("Your parcel has arrived.").Once()

	handler := queries.NewGetOrderMessageQueryHandler(suite.store, adv)

	query, err := queries.NewGetOrderMessageQuery("SD-KAN-11")
	suite.Require().NoError(err)
	msg, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("Your parcel has arrived.", msg)
	adv.AssertExpectations(suite.T())
}

func (suite *QueriesTestSuite) TestGetFleetInsights() {
	ctx := suite.T().Context()

	suite.Run("cached before first refresh", func() {
		adv := new(MockAdvisor)
		adv.On("Insights").Return(nil).Once()

		got, err := queries.NewGetFleetInsightsQueryHandler(suite.store, adv).
			Handle(ctx, queries.NewGetFleetInsightsQuery(false))

		suite.Require().NoError(err)
		suite.NotNil(got)
		suite.Empty(got)
		adv.AssertExpectations(suite.T())
	})

	suite.Run("refresh reads the store", func() {
		adv := new(MockAdvisor)
		adv.On("FleetInsights", ctx,
			mock.MatchedBy(func(o []order.State) bool { return len(o) == 4 }),
			mock.MatchedBy(func(c []courier.State) bool { return len(c) == 4 }),
		).Return(advisor.FallbackInsights).Once()

		got, err := queries.NewGetFleetInsightsQueryHandler(suite.store, adv).
			Handle(ctx, queries.NewGetFleetInsightsQuery(true))

		suite.Require().NoError(err)
		suite.Equal(advisor.FallbackInsights, got)
		adv.AssertExpectations(suite.T())
	})
}
