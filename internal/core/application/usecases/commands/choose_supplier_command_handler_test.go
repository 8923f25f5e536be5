package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

func TestChooseSupplierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	li := testLineItem(t, "li1")
	s := testSession(t, li)
	cmd, err := commands.NewChooseSupplierCommand(s.ID(), "li1", "s2")
	require.NoError(t, err)

	quoteReq := ports.QuoteRequest{
		OriginPostalCode:      "500001", // chosen supplier's postal code
		DestinationPostalCode: "110001", // customer's postal code
		Weight:                2.5,
		COD:                   true,
	}
	offers := []ports.CourierQuote{
		{ID: "c1", Name: "FastShip", EstimatedDeliveryDays: 2, Rating: 4.5, FreightCharge: 80},
		{ID: "c2", Name: "SlowBoat", EstimatedDeliveryDays: 7, Rating: 3.9, FreightCharge: 40},
	}

	sessions := new(MockSessionRepository)
	quotes := new(MockCourierQuotesClient)
	mock.InOrder(
		sessions.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		quotes.On("FetchCandidateCouriers", ctx, quoteReq).Return(offers, nil).Once(),
		sessions.On("Update", ctx, s).Return(nil).Once(),
	)

	h := commands.NewChooseSupplierCommandHandler(sessions, quotes)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "s2", li.SupplierID())
	couriers := li.AvailableCouriers()
	require.Len(t, couriers, 2)
	assert.Equal(t, "c1", couriers[0].ID)
	assert.Equal(t, "BEST", couriers[0].Rank.Label)
	assert.Equal(t, "2ND BEST", couriers[1].Rank.Label)
	sessions.AssertExpectations(t)
	quotes.AssertExpectations(t)
}

func TestChooseSupplierCommandHandler_Handle_UnknownSupplier(t *testing.T) {
	ctx := t.Context()

	li := testLineItem(t, "li1")
	s := testSession(t, li)
	cmd, err := commands.NewChooseSupplierCommand(s.ID(), "li1", "s99")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()
	quotes := new(MockCourierQuotesClient)

	h := commands.NewChooseSupplierCommandHandler(sessions, quotes)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, li.SupplierID())
	quotes.AssertNotCalled(t, "FetchCandidateCouriers", mock.Anything, mock.Anything)
}

func TestChooseSupplierCommandHandler_Handle_UnknownLineItem(t *testing.T) {
	ctx := t.Context()

	s := testSession(t, testLineItem(t, "li1"))
	cmd, err := commands.NewChooseSupplierCommand(s.ID(), "li99", "s1")
	require.NoError(t, err)

	sessions := new(MockSessionRepository)
	sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()

	h := commands.NewChooseSupplierCommandHandler(sessions, new(MockCourierQuotesClient))
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChooseSupplierCommandHandler_Handle_QuoteFailure(t *testing.T) {
	ctx := t.Context()

	li := testLineItem(t, "li1")
	s := testSession(t, li)
	cmd, err := commands.NewChooseSupplierCommand(s.ID(), "li1", "s1")
	require.NoError(t, err)

	quoteErr := errors.New("courier service timeout")
	sessions := new(MockSessionRepository)
	sessions.On("Get", ctx, s.ID()).Return(s, nil).Once()
	quotes := new(MockCourierQuotesClient)
	quotes.On("FetchCandidateCouriers", ctx, mock.Anything).Return(nil, quoteErr).Once()

	h := commands.NewChooseSupplierCommandHandler(sessions, quotes)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, quoteErr)
	// The choice itself stands; only the quote refresh failed.
	assert.Equal(t, "s1", li.SupplierID())
	assert.Empty(t, li.AvailableCouriers())
	sessions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChooseSupplierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChooseSupplierCommand{} // not constructed properly

	h := commands.NewChooseSupplierCommandHandler(new(MockSessionRepository), new(MockCourierQuotesClient))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
