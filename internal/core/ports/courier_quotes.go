package ports

import "context"

// QuoteRequest describes one courier quote lookup. Freight cost depends on
// the origin (supplier) postal code, which is why quotes are fetched per line
// item only after a supplier is chosen.
type QuoteRequest struct {
	OriginPostalCode      string
	DestinationPostalCode string
	Weight                float64
	COD                   bool
}

// CourierQuote is one courier offer returned by the quoting collaborator.
type CourierQuote struct {
	ID                    string
	Name                  string
	EstimatedDeliveryDays int
	Rating                float64
	FreightCharge         float64
}

// CourierQuotesClient fetches candidate couriers for a shipment. The returned
// quotes are ordered by desirability, best first; the scoring comparison is
// the collaborator's responsibility, never the core's.
type CourierQuotesClient interface {
	FetchCandidateCouriers(ctx context.Context, req QuoteRequest) ([]CourierQuote, error)
}
