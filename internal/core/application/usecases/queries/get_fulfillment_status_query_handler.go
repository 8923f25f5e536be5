package queries

import (
	"context"

	"fulfillment/internal/core/ports"
)

// GetFulfillmentStatusQueryHandler builds the fulfillment read model from the
// session store. Read access to per-line status is what the status bar and
// the generate button's enabled state are driven by.
type GetFulfillmentStatusQueryHandler struct {
	sessions ports.SessionRepository
}

// NewGetFulfillmentStatusQueryHandler creates a handler for fulfillment
// status queries.
func NewGetFulfillmentStatusQueryHandler(sessions ports.SessionRepository) GetFulfillmentStatusQueryHandler {
	return GetFulfillmentStatusQueryHandler{sessions: sessions}
}

// Handle executes the query and returns the read model for the session's
// order.
func (h GetFulfillmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentStatusQuery,
) (GetFulfillmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFulfillmentStatusQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetFulfillmentStatusQueryResponse{}, err
	}

	ord := s.Order()
	response := GetFulfillmentStatusQueryResponse{
		OrderID:       ord.ID(),
		OrderName:     ord.Name(),
		AllGenerated:  ord.AllManifestsGenerated(),
		TotalQuantity: ord.TotalQuantity(),
		TotalAmount:   ord.TotalAmount(),
		Lines:         make([]LineItemStatus, 0, len(ord.LineItems())),
	}

	for _, li := range ord.LineItems() {
		response.Lines = append(response.Lines, LineItemStatus{
			ID:         li.ID(),
			Product:    li.Product(),
			SKU:        li.SKU(),
			Quantity:   li.Quantity(),
			UnitPrice:  li.UnitPrice(),
			Status:     li.Status().String(),
			SupplierID: li.SupplierID(),
			CourierID:  li.CourierID(),
		})
	}

	return response, nil
}
