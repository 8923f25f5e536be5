package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/candidate"
	"fulfillment/internal/core/domain/model/manifest"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) BeginFulfillment(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) EndFulfillment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdleBefore(ctx context.Context, cutoff time.Time) int {
	args := m.Called(ctx, cutoff)
	return args.Int(0)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) FetchOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCourierQuotesClient struct{ mock.Mock }

func (m *MockCourierQuotesClient) FetchCandidateCouriers(ctx context.Context, req ports.QuoteRequest) ([]ports.CourierQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CourierQuote), args.Error(1)
}

type MockManifestGenerator struct{ mock.Mock }

func (m *MockManifestGenerator) GenerateManifest(ctx context.Context, req manifest.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockLabelGenerator struct{ mock.Mock }

func (m *MockLabelGenerator) GenerateLabel(ctx context.Context, req manifest.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()

	c, err := order.NewCustomer("cust1", "Jane Roe", "jane@example.com", "555-0101", "1 Main St", "110001")
	require.NoError(t, err)
	return c
}

func testLineItem(t *testing.T, id string) *order.LineItem {
	t.Helper()

	li, err := order.NewLineItem(id, "Widget "+id, "SKU-"+id, 1, 10, []candidate.Supplier{
		{ID: "s1", Name: "Acme", PostalCode: "400001", Weight: 1.5},
		{ID: "s2", Name: "Globex", PostalCode: "500001", Weight: 2.5},
	})
	require.NoError(t, err)
	return li
}

func testSession(t *testing.T, lineItems ...*order.LineItem) *session.Session {
	t.Helper()

	ord, err := order.NewOrder(
		"ord1", "Order #1001", time.Time{}, "", 0, "110001",
		testCustomer(t), lineItems,
	)
	require.NoError(t, err)

	s, err := session.NewSession(ord)
	require.NoError(t, err)
	return s
}
