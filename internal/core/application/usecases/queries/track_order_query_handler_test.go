package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

type TrackOrderQueryHandlerTestSuite struct {
	QueryHandlerTestSuite
	handler queries.TrackOrderQueryHandler
}

func (suite *TrackOrderQueryHandlerTestSuite) SetupSuite() {
	suite.QueryHandlerTestSuite.SetupSuite()
	suite.handler = queries.NewTrackOrderQueryHandler(suite.db)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestGuestOrder_TrackedByContactEmail() {
	ctx := context.Background()
	seeded := suite.seedOrder(func(params *order.NewOrderParams) {
		params.UserID = nil
		params.UserEmail = ""
	})

	query, err := queries.NewTrackOrderQuery(seeded.OrderNumber(), "alex@example.com")
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.OrderNumber().String(), response.OrderNumber)
	suite.Nil(response.UserID)
	suite.Equal("Napoli Express", response.RestaurantName)
	suite.Len(response.Items, 1)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestEmailComparison_IgnoresCase() {
	ctx := context.Background()
	seeded := suite.seedOrder(func(params *order.NewOrderParams) {
		params.UserID = nil
		params.UserEmail = ""
	})

	query, err := queries.NewTrackOrderQuery(seeded.OrderNumber(), "Alex@Example.COM")
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(seeded.OrderNumber().String(), response.OrderNumber)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestAccountEmail_AlsoAccepted() {
	ctx := context.Background()

	// Contact email left empty at checkout, so the order was placed under
	// the account email alone.
	contact, err := order.NewContactInfo("Alex", "Doe", "", "+15550100")
	suite.Require().NoError(err)
	seeded := suite.seedOrder(func(params *order.NewOrderParams) {
		params.Contact = contact
	})

	query, err := queries.NewTrackOrderQuery(seeded.OrderNumber(), "alex@example.com")
	suite.Require().NoError(err)

	response, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(seeded.OrderNumber().String(), response.OrderNumber)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestWrongEmail_ReportsNotFound() {
	ctx := context.Background()
	seeded := suite.seedOrder(func(params *order.NewOrderParams) {
		params.UserID = nil
		params.UserEmail = ""
	})

	query, err := queries.NewTrackOrderQuery(seeded.OrderNumber(), "stranger@example.com")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	// Same error as an unknown number, so the endpoint cannot confirm
	// which order numbers exist.
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TrackOrderQueryHandlerTestSuite) TestUnknownNumber_ReportsNotFound() {
	ctx := context.Background()

	query, err := queries.NewTrackOrderQuery(kernel.NewOrderNumber(), "alex@example.com")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestTrackOrderQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(TrackOrderQueryHandlerTestSuite))
}
