// Package courierquotes implements the courier quoting port over HTTP. A
// quote lookup is two calls: fetch the available courier companies for a
// lane, then have the scoring endpoint order them best first. The ordering
// comparison lives in the collaborator, never here.
package courierquotes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fulfillment/internal/core/ports"
)

// Client fetches and ranks courier quotes from the quoting collaborator.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a courier quotes client. A nil httpClient falls back to
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("courier service base url is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

type quoteRequestDTO struct {
	SupplierPostalCode string  `json:"supplier_postalcode"`
	CustomerPostalCode string  `json:"customer_postalcode"`
	Weight             float64 `json:"weight"`
	COD                int     `json:"cod"`
}

// companyID tolerates the quoting endpoint delivering the company identifier
// as a bare number in one response and a string in another.
type companyID string

func (id *companyID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = companyID(s)
		return nil
	}

	*id = companyID(data)
	return nil
}

func (id companyID) String() string { return string(id) }

type courierCompanyDTO struct {
	CourierCompanyID      companyID `json:"courier_company_id"`
	CourierName           string    `json:"courier_name"`
	EstimatedDeliveryDays int       `json:"estimated_delivery_days"`
	Rating                float64   `json:"rating"`
	FreightCharge         float64   `json:"freight_charge"`
}

type availableCouriersResponse struct {
	Couriers struct {
		Data struct {
			AvailableCourierCompanies []courierCompanyDTO `json:"available_courier_companies"`
		} `json:"data"`
	} `json:"couriers"`
}

type courierDTO struct {
	CourierID             string  `json:"courier_id"`
	CourierName           string  `json:"courier_name"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
	Rating                float64 `json:"rating"`
	FreightCharge         float64 `json:"freight_charge"`
}

type sortCouriersRequest struct {
	Couriers []courierDTO `json:"couriers"`
}

type sortCouriersResponse struct {
	Couriers []courierDTO `json:"couriers"`
}

// FetchCandidateCouriers retrieves the courier offers for one shipment lane,
// ordered best first by the scoring endpoint.
func (c *Client) FetchCandidateCouriers(ctx context.Context, req ports.QuoteRequest) ([]ports.CourierQuote, error) {
	available, err := c.fetchAvailable(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, nil
	}

	sorted, err := c.sortCouriers(ctx, available)
	if err != nil {
		return nil, err
	}

	quotes := make([]ports.CourierQuote, 0, len(sorted))
	for _, dto := range sorted {
		quotes = append(quotes, ports.CourierQuote{
			ID:                    dto.CourierID,
			Name:                  dto.CourierName,
			EstimatedDeliveryDays: dto.EstimatedDeliveryDays,
			Rating:                dto.Rating,
			FreightCharge:         dto.FreightCharge,
		})
	}

	return quotes, nil
}

func (c *Client) fetchAvailable(ctx context.Context, req ports.QuoteRequest) ([]courierDTO, error) {
	cod := 0
	if req.COD {
		cod = 1
	}

	payload := quoteRequestDTO{
		SupplierPostalCode: req.OriginPostalCode,
		CustomerPostalCode: req.DestinationPostalCode,
		Weight:             req.Weight,
		COD:                cod,
	}

	var response availableCouriersResponse
	if err := c.post(ctx, "/get-couriers", payload, &response); err != nil {
		return nil, err
	}

	companies := response.Couriers.Data.AvailableCourierCompanies
	couriers := make([]courierDTO, 0, len(companies))
	for _, company := range companies {
		couriers = append(couriers, courierDTO{
			CourierID:             company.CourierCompanyID.String(),
			CourierName:           company.CourierName,
			EstimatedDeliveryDays: company.EstimatedDeliveryDays,
			Rating:                company.Rating,
			FreightCharge:         company.FreightCharge,
		})
	}

	return couriers, nil
}

func (c *Client) sortCouriers(ctx context.Context, couriers []courierDTO) ([]courierDTO, error) {
	var response sortCouriersResponse
	if err := c.post(ctx, "/sort_couriers", sortCouriersRequest{Couriers: couriers}, &response); err != nil {
		return nil, err
	}

	return response.Couriers, nil
}

func (c *Client) post(ctx context.Context, path string, payload, response any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("call %s: unexpected status %d", path, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}
