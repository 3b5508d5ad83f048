package models

// Offer is a client-defined discount. The catalog is static and never
// persisted remotely; at most one offer applies per transaction.
type Offer struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	MinAmount int    `json:"minAmount"`
}

// QualifiesFor reports whether the offer may reduce the given amount.
func (o Offer) QualifiesFor(amount int) bool {
	return amount >= o.MinAmount
}
