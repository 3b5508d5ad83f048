// Package catalog holds the pure plan-list filtering used by the browsing
// view. Filtering never mutates the fetched list; it always derives a fresh
// slice so clearing a filter restores the full catalog.
package catalog

import (
	"strconv"
	"strings"

	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/models"
)

// PlanFilter is the set of active criteria. Zero values mean "not filtering
// on this dimension", except Operator where the explicit sentinel "all" also
// matches everything.
type PlanFilter struct {
	Operator string
	Category string
	Search   string
}

// Matches reports whether a plan satisfies every active criterion.
func (f PlanFilter) Matches(plan models.Plan) bool {
	if f.Category != "" && plan.Category != f.Category {
		return false
	}
	if f.Operator != "" && f.Operator != consts.OperatorAll && plan.Operator != f.Operator {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		nameMatch := strings.Contains(strings.ToLower(plan.Name), needle)
		priceMatch := strings.Contains(strconv.Itoa(plan.Price), f.Search)
		if !nameMatch && !priceMatch {
			return false
		}
	}
	return true
}

// FilterPlans returns the plans satisfying the filter, preserving input
// order. With no active criteria the result equals the input.
func FilterPlans(plans []models.Plan, filter PlanFilter) []models.Plan {
	filtered := make([]models.Plan, 0, len(plans))
	for _, plan := range plans {
		if filter.Matches(plan) {
			filtered = append(filtered, plan)
		}
	}
	return filtered
}
