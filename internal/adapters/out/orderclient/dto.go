package orderclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// flexString decodes a JSON field that the order endpoint delivers either as
// a string or as a bare number, depending on the record.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	*f = flexString(data)
	return nil
}

func (f flexString) String() string { return string(f) }

func (f flexString) Int(fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return fallback
	}
	return v
}

func (f flexString) Float(fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	if err != nil {
		return fallback
	}
	return v
}

// orderResponse is the order endpoint's payload: the order header, its line
// items with per-line supplier candidates, and the customer record.
type orderResponse struct {
	Order     orderDTO      `json:"order"`
	LineItems []lineItemDTO `json:"lineitems"`
	Customer  customerDTO   `json:"customer"`
}

type orderDTO struct {
	ID                 flexString `json:"id"`
	Name               string     `json:"name"`
	OrderID            flexString `json:"orderId"`
	Date               string     `json:"date"`
	Status             string     `json:"status"`
	Description        string     `json:"description"`
	CustomerPostalCode flexString `json:"customerPostalCode"`
	TotalPrice         flexString `json:"totalPrice"`
}

type lineItemDTO struct {
	ID         flexString    `json:"id"`
	Name       string        `json:"name"`
	Product    string        `json:"product"`
	ProductID  flexString    `json:"product_id"`
	SKU        string        `json:"sku"`
	Quantity   flexString    `json:"quantity"`
	UnitPrice  flexString    `json:"unitPrice"`
	Status     string        `json:"status"`
	SupplierID flexString    `json:"supplierId"`
	CourierID  flexString    `json:"courierId"`
	Suppliers  []supplierDTO `json:"suppliers"`
}

type supplierDTO struct {
	SupplierID      flexString `json:"supplier_id"`
	SupplierName    string     `json:"supplier_name"`
	PostalCode      flexString `json:"postal_code"`
	SupplierAddress string     `json:"supplier_address"`
	SupplierPhone   flexString `json:"supplier_phone"`
	Rate            flexString `json:"rate"`
	Weight          flexString `json:"weight"`
	Rating          flexString `json:"rating"`
}

type customerDTO struct {
	ID         flexString `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      flexString `json:"phone"`
	Address    string     `json:"address"`
	PostalCode flexString `json:"postal_code"`
}

var orderDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
}

// parseOrderDate tries the date layouts the order endpoint has been seen to
// use. An unparseable or empty date yields the zero time, never an error.
func parseOrderDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return time.Time{}
}
