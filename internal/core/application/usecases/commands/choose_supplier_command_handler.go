package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/candidate"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ChooseSupplierCommandHandler records a supplier choice and refreshes the
// line's courier candidates.
//
// Choosing a supplier fixes the shipment origin, so the handler immediately
// quotes couriers for (supplier postal code -> customer postal code, shipment
// weight), ranks the quotes, and attaches them to the line. The quote
// collaborator returns offers ordered best-first; the handler only labels
// positions.
type ChooseSupplierCommandHandler struct {
	sessions ports.SessionRepository
	quotes   ports.CourierQuotesClient
	ranker   services.CandidateRanker
}

// NewChooseSupplierCommandHandler creates a handler for supplier selection
// operations.
func NewChooseSupplierCommandHandler(
	sessions ports.SessionRepository,
	quotes ports.CourierQuotesClient,
) ChooseSupplierCommandHandler {
	return ChooseSupplierCommandHandler{
		sessions: sessions,
		quotes:   quotes,
		ranker:   services.NewCandidateRanker(),
	}
}

// Handle processes the supplier selection command.
// The chosen supplier must be one of the line's candidates; choosing an
// unknown supplier is a caller bug and fails without mutating the line.
func (h ChooseSupplierCommandHandler) Handle(ctx context.Context, cmd ChooseSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	li, err := s.Order().LineItem(cmd.LineItemID())
	if err != nil {
		return err
	}

	supplier, ok := li.SupplierByID(cmd.SupplierID())
	if !ok {
		return errs.NewObjectNotFoundError("supplierId", cmd.SupplierID())
	}

	if err = li.ChooseSupplier(cmd.SupplierID()); err != nil {
		return err
	}

	couriers, err := fetchRankedCouriers(ctx, h.quotes, h.ranker, supplier, s.Order().Customer())
	if err != nil {
		return err
	}

	if err = li.SetAvailableCouriers(couriers); err != nil {
		return err
	}

	return h.sessions.Update(ctx, s)
}

// fetchRankedCouriers quotes couriers for one supplier origin and returns the
// rank-annotated candidate list. Shared with the prefetch handler.
func fetchRankedCouriers(
	ctx context.Context,
	quotes ports.CourierQuotesClient,
	ranker services.CandidateRanker,
	supplier candidate.Supplier,
	customer order.Customer,
) ([]candidate.Courier, error) {
	offers, err := quotes.FetchCandidateCouriers(ctx, ports.QuoteRequest{
		OriginPostalCode:      supplier.PostalCode,
		DestinationPostalCode: customer.PostalCode(),
		Weight:                supplier.Weight,
		COD:                   true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch candidate couriers: %w", err)
	}

	couriers := make([]candidate.Courier, len(offers))
	for i, offer := range offers {
		couriers[i] = candidate.Courier{
			ID:                    offer.ID,
			Name:                  offer.Name,
			EstimatedDeliveryDays: offer.EstimatedDeliveryDays,
			Rating:                offer.Rating,
			FreightCharge:         offer.FreightCharge,
		}
	}

	return ranker.RankCouriers(couriers), nil
}
