package views

import (
	"context"
	"sync"

	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/service/interfaces"
	"mobile-recharge-client/internal/service/reporting"
)

// HistoryView is the user's own transaction list with a local status filter.
type HistoryView struct {
	api interfaces.RechargeAPI

	mu           sync.Mutex
	transactions []models.RechargeTransaction
	status       string
}

func NewHistoryView(api interfaces.RechargeAPI) *HistoryView {
	return &HistoryView{api: api}
}

// Load fetches the caller's history, replacing the cache.
func (v *HistoryView) Load(ctx context.Context) error {
	transactions, err := v.api.GetHistory(ctx)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorLoadingHistory, err)
		return err
	}
	v.mu.Lock()
	v.transactions = transactions
	v.mu.Unlock()
	return nil
}

// SetStatusFilter narrows Transactions locally; it never refetches.
func (v *HistoryView) SetStatusFilter(status string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = status
}

func (v *HistoryView) Transactions() []models.RechargeTransaction {
	v.mu.Lock()
	defer v.mu.Unlock()
	return reporting.FilterTransactions(v.transactions, v.status)
}
