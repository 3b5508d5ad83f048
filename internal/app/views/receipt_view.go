package views

import (
	"context"
	"errors"

	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/service/interfaces"
)

// ErrNoReceipt is returned when the success view is opened without a
// completed recharge behind it.
var ErrNoReceipt = errors.New("no recharge receipt available")

// ReceiptView shows the outcome of the most recent recharge exactly once.
type ReceiptView struct {
	handoff interfaces.HandoffStore
}

func NewReceiptView(handoff interfaces.HandoffStore) *ReceiptView {
	return &ReceiptView{handoff: handoff}
}

// Load consumes the receipt hand-off. Reopening the view after a successful
// load yields ErrNoReceipt, mirroring the one-shot nature of the hand-off.
func (v *ReceiptView) Load(ctx context.Context) (*models.Receipt, error) {
	receipt, err := v.handoff.TakeReceipt(ctx)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, ErrNoReceipt
	}
	return receipt, nil
}
