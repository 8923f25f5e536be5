package commands

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// PrefetchCouriersCommandHandler fetches courier quotes for every line item
// that has a chosen supplier but no quoted couriers yet.
//
// Quote calls run concurrently, one per line; each goroutine touches only its
// own line item, so the aggregate sees no contended writes. Fulfillment must
// not start while a prefetch is outstanding — callers hold that rule, the
// handler holds the per-line isolation.
type PrefetchCouriersCommandHandler struct {
	sessions ports.SessionRepository
	quotes   ports.CourierQuotesClient
	ranker   services.CandidateRanker
}

// NewPrefetchCouriersCommandHandler creates a handler for quote prefetch
// operations.
func NewPrefetchCouriersCommandHandler(
	sessions ports.SessionRepository,
	quotes ports.CourierQuotesClient,
) PrefetchCouriersCommandHandler {
	return PrefetchCouriersCommandHandler{
		sessions: sessions,
		quotes:   quotes,
		ranker:   services.NewCandidateRanker(),
	}
}

// Handle processes the prefetch command. A failed quote call fails the whole
// command, but lines whose fetch already completed keep their candidate
// lists.
func (h PrefetchCouriersCommandHandler) Handle(ctx context.Context, cmd PrefetchCouriersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	customer := s.Order().Customer()

	g, gctx := errgroup.WithContext(ctx)
	for _, li := range s.Order().LineItems() {
		if li.Status().IsTerminal() || li.SupplierID() == "" || len(li.AvailableCouriers()) > 0 {
			continue
		}

		supplier, ok := li.SupplierByID(li.SupplierID())
		if !ok {
			continue
		}

		g.Go(func() error {
			couriers, fetchErr := fetchRankedCouriers(gctx, h.quotes, h.ranker, supplier, customer)
			if fetchErr != nil {
				return fetchErr
			}
			return li.SetAvailableCouriers(couriers)
		})
	}

	if err = g.Wait(); err != nil {
		return err
	}

	return h.sessions.Update(ctx, s)
}
