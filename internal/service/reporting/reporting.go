// Package reporting derives the dashboard aggregates from the full
// transaction set. All functions are pure so a refetch simply recomputes.
package reporting

import (
	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/models"
)

// Stats are the dashboard headline numbers plus the recent slice.
type Stats struct {
	TotalTransactions int
	TotalRevenue      int
	TotalUsers        int
	Recent            []models.RechargeTransaction
}

// FilterTransactions returns the transactions with the given status, or the
// whole set when status is empty or "all".
func FilterTransactions(transactions []models.RechargeTransaction, status string) []models.RechargeTransaction {
	if status == "" || status == "all" {
		return transactions
	}
	filtered := make([]models.RechargeTransaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Status == status {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// ComputeStats aggregates over every transaction regardless of status.
// Revenue sums the charged amounts, distinct users are keyed by owner id
// with phone number as the fallback, and Recent holds the last few
// transactions newest first.
func ComputeStats(transactions []models.RechargeTransaction) Stats {
	stats := Stats{TotalTransactions: len(transactions)}

	seen := make(map[string]struct{})
	for _, tx := range transactions {
		stats.TotalRevenue += tx.Amount
		if key := tx.UserKey(); key != "" {
			seen[key] = struct{}{}
		}
	}
	stats.TotalUsers = len(seen)

	start := len(transactions) - consts.RecentTransactionCount
	if start < 0 {
		start = 0
	}
	tail := transactions[start:]
	stats.Recent = make([]models.RechargeTransaction, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		stats.Recent = append(stats.Recent, tail[i])
	}
	return stats
}
