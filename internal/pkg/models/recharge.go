package models

import "time"

// UserRef is the embedded owner reference on a recharge record.
type UserRef struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// RechargeTransaction is a completed (or attempted) recharge as returned by
// the backend. Immutable from the client's perspective once created.
type RechargeTransaction struct {
	ID              string    `json:"_id,omitempty"`
	TransactionID   string    `json:"transactionId,omitempty"`
	PhoneNumber     string    `json:"phoneNumber"`
	Operator        string    `json:"operator"`
	Plan            Plan      `json:"plan,omitempty"`
	Amount          int       `json:"amount"`
	OriginalAmount  int       `json:"originalAmount,omitempty"`
	DiscountApplied int       `json:"discountApplied,omitempty"`
	DiscountCode    string    `json:"discountCode,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	User            *UserRef  `json:"user,omitempty"`
}

// UserKey identifies the transaction owner for distinct-user counting:
// the user id when the backend populated it, otherwise the phone number.
func (t RechargeTransaction) UserKey() string {
	if t.User != nil && t.User.ID != "" {
		return t.User.ID
	}
	return t.PhoneNumber
}

// Receipt is the local snapshot handed off to the success view after a
// recharge is accepted.
type Receipt struct {
	PhoneNumber   string    `json:"phoneNumber"`
	Operator      string    `json:"operator"`
	Amount        int       `json:"amount"`
	Plan          Plan      `json:"plan"`
	TransactionID string    `json:"transactionId"`
	Timestamp     time.Time `json:"timestamp"`
}
