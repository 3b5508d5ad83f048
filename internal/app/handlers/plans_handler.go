package handlers

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"mobile-recharge-client/internal/app/views"
	"mobile-recharge-client/internal/service/catalog"
)

// PlansCmd lists the catalog with optional local filters. The -select flag
// stores a plan for the next recharge command to pick up.
func (h *Handler) PlansCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plans", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	operator := fs.String("operator", "", "filter by operator (or \"all\")")
	category := fs.String("category", "", "filter by category (prepaid or postpaid)")
	search := fs.String("search", "", "match against plan name or price")
	selectID := fs.String("select", "", "store the plan with this id for the next recharge")
	if err := fs.Parse(args); err != nil {
		return err
	}

	plans, err := h.Plans.GetPlans(ctx, "")
	if err != nil {
		return err
	}

	filtered := catalog.FilterPlans(plans, catalog.PlanFilter{
		Operator: *operator,
		Category: *category,
		Search:   *search,
	})
	if len(filtered) == 0 {
		h.printf("No plans match.\n")
		return nil
	}
	for _, plan := range filtered {
		h.printPlan(plan)
	}

	if *selectID != "" {
		for _, plan := range plans {
			if plan.Identifier() == *selectID {
				if err := h.Handoff.SaveSelectedPlan(ctx, plan); err != nil {
					return err
				}
				h.printf("Selected %s for the next recharge.\n", plan.Name)
				return nil
			}
		}
		h.printf("Plan %q not found; nothing selected.\n", *selectID)
	}
	return nil
}

// Watch keeps the plan list on screen and live. It refetches on change
// signals from other instances, every poll interval and on SIGCONT, which
// stands in for the process regaining the foreground.
func (h *Handler) Watch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	operator := fs.String("operator", "", "filter by operator (or \"all\")")
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	view := views.NewPlansView(h.Plans, h.Notifier)
	view.SetFilter(catalog.PlanFilter{Operator: *operator, Category: *category})
	view.SetOnUpdate(func() {
		h.printf("--- plans ---\n")
		for _, plan := range view.Plans() {
			h.printPlan(plan)
		}
	})

	if err := view.Open(ctx); err != nil {
		return err
	}
	defer view.Close()

	focus := make(chan os.Signal, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(focus, syscall.SIGCONT)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(focus)
	defer signal.Stop(quit)

	for {
		select {
		case <-focus:
			view.OnFocus(ctx)
		case <-quit:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
