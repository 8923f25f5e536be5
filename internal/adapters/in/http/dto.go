package http

import "fulfillment/internal/core/application/usecases/queries"

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoadOrderRequest opens a viewing session for one order.
type LoadOrderRequest struct {
	OrderID string `json:"orderId"`
}

// LoadOrderResponse returns the identifier of the opened session.
type LoadOrderResponse struct {
	SessionID string `json:"sessionId"`
}

// ChooseSupplierRequest records a supplier choice for one line item.
type ChooseSupplierRequest struct {
	SupplierID string `json:"supplierId"`
}

// ChooseCourierRequest records a courier choice for one line item.
type ChooseCourierRequest struct {
	CourierID string `json:"courierId"`
}

// LineItemStatus is the per-line slice of the fulfillment status response.
type LineItemStatus struct {
	ID         string  `json:"id"`
	Product    string  `json:"product"`
	SKU        string  `json:"sku"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Status     string  `json:"status"`
	SupplierID string  `json:"supplierId,omitempty"`
	CourierID  string  `json:"courierId,omitempty"`
}

// FulfillmentStatus is the GET session response body.
type FulfillmentStatus struct {
	OrderID       string           `json:"orderId"`
	OrderName     string           `json:"orderName"`
	AllGenerated  bool             `json:"allGenerated"`
	TotalQuantity int              `json:"totalQuantity"`
	TotalAmount   float64          `json:"totalAmount"`
	Lines         []LineItemStatus `json:"lines"`
}

func fulfillmentStatusResponse(status queries.GetFulfillmentStatusQueryResponse) FulfillmentStatus {
	response := FulfillmentStatus{
		OrderID:       status.OrderID,
		OrderName:     status.OrderName,
		AllGenerated:  status.AllGenerated,
		TotalQuantity: status.TotalQuantity,
		TotalAmount:   status.TotalAmount,
		Lines:         make([]LineItemStatus, 0, len(status.Lines)),
	}

	for _, line := range status.Lines {
		response.Lines = append(response.Lines, LineItemStatus{
			ID:         line.ID,
			Product:    line.Product,
			SKU:        line.SKU,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Status:     line.Status,
			SupplierID: line.SupplierID,
			CourierID:  line.CourierID,
		})
	}

	return response
}
