package candidate

// Courier is a possible shipping carrier for a line item. Couriers are quoted
// per line item only after a supplier is chosen, because the freight charge
// depends on the origin (supplier) postal code.
type Courier struct {
	ID                    string
	Name                  string
	EstimatedDeliveryDays int
	Rating                float64
	FreightCharge         float64
	Rank                  Rank
}
