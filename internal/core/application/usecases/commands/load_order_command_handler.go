package commands

import (
	"context"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// LoadOrderCommandHandler fetches an order from the remote order endpoint,
// ranks each line's supplier candidates, and opens the viewing session that
// owns the aggregate.
//
// Ranking fires here because this is the moment a genuinely new, unranked
// candidate list arrives; every later read sees the annotated list and the
// ranker's idempotence guard keeps re-loads from relabeling.
type LoadOrderCommandHandler struct {
	orders   ports.OrderClient
	sessions ports.SessionRepository
	ranker   services.CandidateRanker
}

// NewLoadOrderCommandHandler creates a handler for order loading operations.
func NewLoadOrderCommandHandler(
	orders ports.OrderClient,
	sessions ports.SessionRepository,
) LoadOrderCommandHandler {
	return LoadOrderCommandHandler{
		orders:   orders,
		sessions: sessions,
		ranker:   services.NewCandidateRanker(),
	}
}

// Handle processes the load command and returns the new session's identifier.
func (h LoadOrderCommandHandler) Handle(ctx context.Context, cmd LoadOrderCommand) (uuid.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return uuid.Nil, err
	}

	ord, err := h.orders.FetchOrder(ctx, cmd.OrderID())
	if err != nil {
		return uuid.Nil, err
	}

	for _, li := range ord.LineItems() {
		if li.Status().IsTerminal() {
			continue
		}
		if err = li.SetSuppliers(h.ranker.RankSuppliers(li.Suppliers())); err != nil {
			return uuid.Nil, err
		}
	}

	s, err := session.NewSession(ord)
	if err != nil {
		return uuid.Nil, err
	}

	if err = h.sessions.Add(ctx, s); err != nil {
		return uuid.Nil, err
	}

	return s.ID(), nil
}
