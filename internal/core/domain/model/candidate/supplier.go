package candidate

// Supplier is a possible fulfillment source for a line item. Suppliers are
// provided externally per line item together with the order payload; the
// engine only annotates them with a display rank.
//
// PostalCode is the shipment origin used when quoting couriers, and Weight is
// the shipment weight the quote is based on.
type Supplier struct {
	ID         string
	Name       string
	Address    string
	Phone      string
	PostalCode string
	Weight     float64
	Rating     float64
	Rank       Rank
}
