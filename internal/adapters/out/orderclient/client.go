// Package orderclient implements the order endpoint port over HTTP. The
// remote endpoint is the authoritative source of order state; this client
// only reads it.
package orderclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"fulfillment/internal/core/domain/model/candidate"
	"fulfillment/internal/core/domain/model/order"
)

// Client fetches orders from the remote order endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an order endpoint client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("order endpoint base url is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// FetchOrder retrieves one order with its line items and customer record and
// assembles the aggregate. Line items already fulfilled upstream arrive with
// their terminal status set, so a reloaded order resumes exactly where the
// previous session stopped.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*order.Order, error) {
	endpoint := fmt.Sprintf("%s/order?itemId=%s", c.baseURL, url.QueryEscape(orderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", orderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch order %s: unexpected status %d", orderID, resp.StatusCode)
	}

	var payload orderResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", orderID, err)
	}

	return toDomain(payload)
}

// toDomain assembles the order aggregate from the endpoint payload.
func toDomain(payload orderResponse) (*order.Order, error) {
	customer, err := order.NewCustomer(
		payload.Customer.ID.String(),
		payload.Customer.Name,
		payload.Customer.Email,
		payload.Customer.Phone.String(),
		payload.Customer.Address,
		payload.Customer.PostalCode.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("customer in order payload: %w", err)
	}

	lineItems := make([]*order.LineItem, 0, len(payload.LineItems))
	for _, dto := range payload.LineItems {
		li, liErr := lineItemToDomain(dto)
		if liErr != nil {
			return nil, fmt.Errorf("line item %s in order payload: %w", dto.ID, liErr)
		}
		lineItems = append(lineItems, li)
	}

	id := payload.Order.ID.String()
	if id == "" {
		id = payload.Order.OrderID.String()
	}

	return order.NewOrder(
		id,
		payload.Order.Name,
		parseOrderDate(payload.Order.Date),
		payload.Order.Description,
		payload.Order.TotalPrice.Float(0),
		payload.Order.CustomerPostalCode.String(),
		customer,
		lineItems,
	)
}

func lineItemToDomain(dto lineItemDTO) (*order.LineItem, error) {
	suppliers := make([]candidate.Supplier, 0, len(dto.Suppliers))
	for _, s := range dto.Suppliers {
		suppliers = append(suppliers, candidate.Supplier{
			ID:         s.SupplierID.String(),
			Name:       s.SupplierName,
			Address:    s.SupplierAddress,
			Phone:      s.SupplierPhone.String(),
			PostalCode: s.PostalCode.String(),
			Weight:     s.Weight.Float(0),
			Rating:     s.Rating.Float(0),
		})
	}

	product := dto.Product
	if product == "" {
		product = dto.Name
	}

	li, err := order.NewLineItem(
		dto.ID.String(),
		product,
		dto.SKU,
		dto.Quantity.Int(1),
		dto.UnitPrice.Float(0),
		suppliers,
	)
	if err != nil {
		return nil, err
	}

	// Selections recorded upstream are replayed before any terminal marking,
	// since a terminal line refuses selection mutations.
	if supplierID := dto.SupplierID.String(); supplierID != "" {
		if err = li.ChooseSupplier(supplierID); err != nil {
			return nil, err
		}

		if courierID := dto.CourierID.String(); courierID != "" {
			if err = li.ChooseCourier(courierID); err != nil {
				return nil, err
			}
		}
	}

	if order.StatusFromString(dto.Status).IsTerminal() {
		if err = li.MarkManifestGenerated(); err != nil {
			return nil, err
		}
	}

	return li, nil
}
