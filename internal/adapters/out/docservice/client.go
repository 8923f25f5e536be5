// Package docservice implements the manifest and label generation ports
// against the remote document service. The service renders and stores the
// documents itself; a successful response is the only artifact this client
// needs.
package docservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fulfillment/internal/core/domain/model/manifest"
)

// Client generates manifests and labels through the document service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a document service client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("document service base url is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

type generateRequestDTO struct {
	SupplierID      string           `json:"supplierId"`
	SupplierName    string           `json:"supplierName"`
	SupplierAddress string           `json:"supplierAddress"`
	SupplierPhone   string           `json:"supplierPhone"`
	CourierID       string           `json:"courierId"`
	CourierName     string           `json:"courierName"`
	Customer        customerDTO      `json:"customer"`
	LineItems       []requestItemDTO `json:"lineitems"`
}

type customerDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
}

type requestItemDTO struct {
	ID        string  `json:"id"`
	Product   string  `json:"product"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// GenerateManifest renders the shipping manifest for one group.
func (c *Client) GenerateManifest(ctx context.Context, req manifest.Request) error {
	return c.generate(ctx, "/generate-manifest", req)
}

// GenerateLabel renders the shipping label for one group.
func (c *Client) GenerateLabel(ctx context.Context, req manifest.Request) error {
	return c.generate(ctx, "/generate-label", req)
}

func (c *Client) generate(ctx context.Context, path string, req manifest.Request) error {
	body, err := json.Marshal(fromDomain(req))
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("call %s: unexpected status %d", path, resp.StatusCode)
	}

	return nil
}

func fromDomain(req manifest.Request) generateRequestDTO {
	dto := generateRequestDTO{
		SupplierID:      req.SupplierID,
		SupplierName:    req.SupplierName,
		SupplierAddress: req.SupplierAddress,
		SupplierPhone:   req.SupplierPhone,
		CourierID:       req.CourierID,
		CourierName:     req.CourierName,
		Customer: customerDTO{
			ID:         req.Customer.ID(),
			Name:       req.Customer.Name(),
			Email:      req.Customer.Email(),
			Phone:      req.Customer.Phone(),
			Address:    req.Customer.Address(),
			PostalCode: req.Customer.PostalCode(),
		},
		LineItems: make([]requestItemDTO, 0, len(req.Items)),
	}

	for _, li := range req.Items {
		dto.LineItems = append(dto.LineItems, requestItemDTO{
			ID:        li.ID(),
			Product:   li.Product(),
			SKU:       li.SKU(),
			Quantity:  li.Quantity(),
			UnitPrice: li.UnitPrice(),
		})
	}

	return dto
}
