package handlers

import (
	"context"
	"flag"
	"strings"

	"mobile-recharge-client/internal/app/views"
	"mobile-recharge-client/internal/pkg/models"
)

// Admin dispatches the admin subcommands. The role gate here only saves a
// round trip; the backend rejects non-admin tokens regardless.
func (h *Handler) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		h.printf("Usage: admin <dashboard|users|stats|add-plan|update-plan|delete-plan> [flags]\n")
		return nil
	}

	view := h.newAdminView()

	switch args[0] {
	case "dashboard":
		return h.adminDashboard(ctx, view)
	case "users":
		return h.adminUsers(ctx, view)
	case "stats":
		return h.adminStats(ctx, view, args[1:])
	case "add-plan":
		return h.adminAddPlan(ctx, view, args[1:])
	case "update-plan":
		return h.adminUpdatePlan(ctx, view, args[1:])
	case "delete-plan":
		return h.adminDeletePlan(ctx, view, args[1:])
	default:
		return ErrUnknownCommand
	}
}

func (h *Handler) newAdminView() *views.AdminDashboardView {
	return views.NewAdminDashboardView(h.Plans, h.Users, h.Recharges, h.Notifier, func() bool {
		user := h.Session.CurrentUser()
		return user != nil && user.IsAdmin()
	})
}

func (h *Handler) adminDashboard(ctx context.Context, view *views.AdminDashboardView) error {
	// Partial data still renders; the error reports which sections failed.
	loadErr := view.Load(ctx)

	stats := view.Stats()
	h.printf("Transactions: %d\nRevenue:      ₹%d\nUsers:        %d\nPlans:        %d\n",
		stats.TotalTransactions, stats.TotalRevenue, stats.TotalUsers, len(view.Plans()))

	if len(stats.Recent) > 0 {
		h.printf("\nRecent transactions:\n")
		for _, tx := range stats.Recent {
			h.printTransaction(tx)
		}
	}
	return loadErr
}

func (h *Handler) adminUsers(ctx context.Context, view *views.AdminDashboardView) error {
	if err := view.Load(ctx); err != nil {
		return err
	}
	for _, user := range view.Users() {
		h.printf("%-20s %-24s %-12s %s\n", user.Username, user.Email, user.Phone, user.Role)
	}
	return nil
}

func (h *Handler) adminStats(ctx context.Context, view *views.AdminDashboardView, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	server := fs.Bool("server", false, "show the backend's own aggregates instead of computing locally")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *server {
		user := h.Session.CurrentUser()
		if user == nil || !user.IsAdmin() {
			return views.ErrAdminOnly
		}
		stats, err := h.Recharges.GetTransactionStats(ctx)
		if err != nil {
			return err
		}
		h.printf("Transactions: %d\nRevenue:      ₹%d\nUsers:        %d\n",
			stats.TotalTransactions, stats.TotalRevenue, stats.TotalUsers)
		return nil
	}

	if err := view.Load(ctx); err != nil {
		return err
	}
	stats := view.Stats()
	h.printf("Transactions: %d\nRevenue:      ₹%d\nUsers:        %d\n",
		stats.TotalTransactions, stats.TotalRevenue, stats.TotalUsers)
	return nil
}

func planFlags(fs *flag.FlagSet) (operator, name *string, price, validity *int, data, category, benefits, description *string) {
	operator = fs.String("operator", "", "operator the plan belongs to")
	name = fs.String("name", "", "display name")
	price = fs.Int("price", 0, "price in rupees")
	validity = fs.Int("validity", 0, "validity in days")
	data = fs.String("data", "", "data allowance, e.g. 2GB/day")
	category = fs.String("category", "prepaid", "prepaid or postpaid")
	benefits = fs.String("benefits", "", "comma-separated benefit list")
	description = fs.String("description", "", "longer description")
	return
}

func planFromFlags(operator, name string, price, validity int, data, category, benefits, description string) models.Plan {
	plan := models.Plan{
		Operator:    operator,
		Name:        name,
		Price:       price,
		Validity:    validity,
		Data:        data,
		Category:    category,
		Description: description,
	}
	if benefits != "" {
		for _, b := range strings.Split(benefits, ",") {
			plan.Benefits = append(plan.Benefits, strings.TrimSpace(b))
		}
	}
	return plan
}

func (h *Handler) adminAddPlan(ctx context.Context, view *views.AdminDashboardView, args []string) error {
	fs := flag.NewFlagSet("add-plan", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	operator, name, price, validity, data, category, benefits, description := planFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	plan := planFromFlags(*operator, *name, *price, *validity, *data, *category, *benefits, *description)
	if err := view.AddPlan(ctx, plan); err != nil {
		return err
	}
	h.printf("Plan %q created.\n", plan.Name)
	return nil
}

func (h *Handler) adminUpdatePlan(ctx context.Context, view *views.AdminDashboardView, args []string) error {
	fs := flag.NewFlagSet("update-plan", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	id := fs.String("id", "", "id of the plan to update")
	operator, name, price, validity, data, category, benefits, description := planFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	plan := planFromFlags(*operator, *name, *price, *validity, *data, *category, *benefits, *description)
	if err := view.UpdatePlan(ctx, *id, plan); err != nil {
		return err
	}
	h.printf("Plan %s updated.\n", *id)
	return nil
}

func (h *Handler) adminDeletePlan(ctx context.Context, view *views.AdminDashboardView, args []string) error {
	fs := flag.NewFlagSet("delete-plan", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	id := fs.String("id", "", "id of the plan to delete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := view.DeletePlan(ctx, *id); err != nil {
		return err
	}
	h.printf("Plan %s deleted.\n", *id)
	return nil
}
