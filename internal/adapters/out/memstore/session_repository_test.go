package memstore_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/adapters/out/memstore"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()

	customer, err := order.NewCustomer("cust1", "Jane Roe", "", "", "", "110001")
	require.NoError(t, err)

	ord, err := order.NewOrder("ord1", "Order #1001", time.Time{}, "", 0, "110001", customer, nil)
	require.NoError(t, err)

	s, err := session.NewSession(ord)
	require.NoError(t, err)
	return s
}

func TestSessionRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()
	s := newSession(t)

	require.NoError(t, repo.Add(ctx, s))

	got, err := repo.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestSessionRepository_GetUnknownSession(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()

	_, err := repo.Get(ctx, uuid.New())

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestSessionRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()
	s := newSession(t)

	t.Run("should refresh a stored session", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, s))
		require.NoError(t, repo.Update(ctx, s))
	})

	t.Run("should fail for an evicted session", func(t *testing.T) {
		gone := newSession(t)
		assert.ErrorIs(t, repo.Update(ctx, gone), errs.ErrObjectNotFound)
	})
}

func TestSessionRepository_BeginFulfillment(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()
	s := newSession(t)
	require.NoError(t, repo.Add(ctx, s))

	t.Run("should acquire the flag once", func(t *testing.T) {
		started, err := repo.BeginFulfillment(ctx, s.ID())
		require.NoError(t, err)
		assert.True(t, started)
	})

	t.Run("should refuse a second acquisition", func(t *testing.T) {
		started, err := repo.BeginFulfillment(ctx, s.ID())
		require.NoError(t, err)
		assert.False(t, started)
	})

	t.Run("should acquire again after release", func(t *testing.T) {
		require.NoError(t, repo.EndFulfillment(ctx, s.ID()))

		started, err := repo.BeginFulfillment(ctx, s.ID())
		require.NoError(t, err)
		assert.True(t, started)
	})

	t.Run("should fail for an unknown session", func(t *testing.T) {
		_, err := repo.BeginFulfillment(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSessionRepository_DeleteIdleBefore(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()

	idle := newSession(t)
	idle.Touch(time.Now().Add(-time.Hour))
	active := newSession(t)
	require.NoError(t, repo.Add(ctx, idle))
	require.NoError(t, repo.Add(ctx, active))

	removed := repo.DeleteIdleBefore(ctx, time.Now().Add(-30*time.Minute))

	assert.Equal(t, 1, removed)

	_, err := repo.Get(ctx, idle.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = repo.Get(ctx, active.ID())
	assert.NoError(t, err)
}

func TestSessionRepository_DeleteIdleBeforeKeepsInFlightSessions(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()

	s := newSession(t)
	s.Touch(time.Now().Add(-time.Hour))
	require.NoError(t, repo.Add(ctx, s))

	started, err := repo.BeginFulfillment(ctx, s.ID())
	require.NoError(t, err)
	require.True(t, started)

	cutoff := time.Now().Add(-30 * time.Minute)

	// A long fulfillment pass can outlast the idle TTL; the session must
	// survive until the pass releases the flag.
	assert.Zero(t, repo.DeleteIdleBefore(ctx, cutoff))

	require.NoError(t, repo.EndFulfillment(ctx, s.ID()))
	assert.Equal(t, 1, repo.DeleteIdleBefore(ctx, cutoff))
}

func TestSessionRepository_GetRefreshesLastSeen(t *testing.T) {
	ctx := t.Context()
	repo := memstore.NewSessionRepository()

	s := newSession(t)
	s.Touch(time.Now().Add(-time.Hour))
	require.NoError(t, repo.Add(ctx, s))

	_, err := repo.Get(ctx, s.ID())
	require.NoError(t, err)

	// The read deferred expiry, so a cleanup pass keeps the session.
	removed := repo.DeleteIdleBefore(ctx, time.Now().Add(-30*time.Minute))
	assert.Zero(t, removed)
}
