package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
)

func TestLoadOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	li := testLineItem(t, "li1")
	ord, err := order.NewOrder("ord1", "Order #1001", time.Time{}, "", 0, "110001",
		testCustomer(t), []*order.LineItem{li})
	require.NoError(t, err)

	cmd, err := commands.NewLoadOrderCommand("ord1")
	require.NoError(t, err)

	orders := new(MockOrderClient)
	sessions := new(MockSessionRepository)
	mock.InOrder(
		orders.On("FetchOrder", ctx, "ord1").Return(ord, nil).Once(),
		sessions.On("Add", ctx, mock.AnythingOfType("*session.Session")).Return(nil).Once(),
	)

	h := commands.NewLoadOrderCommandHandler(orders, sessions)
	sessionID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sessionID)

	added := sessions.Calls[0].Arguments.Get(1).(*session.Session)
	assert.Equal(t, sessionID, added.ID())
	assert.Same(t, ord, added.Order())

	suppliers := li.Suppliers()
	require.Len(t, suppliers, 2)
	assert.Equal(t, "BEST", suppliers[0].Rank.Label)
	assert.Equal(t, "2ND BEST", suppliers[1].Rank.Label)
	orders.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLoadOrderCommandHandler_Handle_SkipsTerminalLines(t *testing.T) {
	ctx := t.Context()

	done := testLineItem(t, "li1")
	require.NoError(t, done.ChooseSupplier("s1"))
	require.NoError(t, done.ChooseCourier("c1"))
	require.NoError(t, done.MarkManifestGenerated())

	ord, err := order.NewOrder("ord1", "Order #1001", time.Time{}, "", 0, "110001",
		testCustomer(t), []*order.LineItem{done})
	require.NoError(t, err)

	cmd, err := commands.NewLoadOrderCommand("ord1")
	require.NoError(t, err)

	orders := new(MockOrderClient)
	orders.On("FetchOrder", ctx, "ord1").Return(ord, nil).Once()
	sessions := new(MockSessionRepository)
	sessions.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewLoadOrderCommandHandler(orders, sessions)
	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	// Terminal lines are frozen, so their candidates stay unranked.
	assert.True(t, done.Suppliers()[0].Rank.IsZero())
}

func TestLoadOrderCommandHandler_Handle_FetchError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewLoadOrderCommand("ord1")
	require.NoError(t, err)

	fetchErr := errors.New("order endpoint unreachable")
	orders := new(MockOrderClient)
	orders.On("FetchOrder", ctx, "ord1").Return(nil, fetchErr).Once()
	sessions := new(MockSessionRepository)

	h := commands.NewLoadOrderCommandHandler(orders, sessions)
	sessionID, err := h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, uuid.Nil, sessionID)
	sessions.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestLoadOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LoadOrderCommand{} // not constructed properly

	h := commands.NewLoadOrderCommandHandler(new(MockOrderClient), new(MockSessionRepository))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
