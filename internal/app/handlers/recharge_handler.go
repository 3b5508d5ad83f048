package handlers

import (
	"context"
	"flag"

	"mobile-recharge-client/internal/app/views"
	"mobile-recharge-client/internal/service/recharge"
)

// Recharge drives a full checkout. A plan stored by `plans -select` is
// adopted automatically; explicit flags override it.
func (h *Handler) Recharge(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("recharge", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	phone := fs.String("phone", "", "10-digit mobile number to recharge")
	operator := fs.String("operator", "", "target operator")
	planID := fs.String("plan", "", "plan id from the plans listing")
	offer := fs.String("offer", "", "discount code (FIRST10, SAVE20, CASHBACK50)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	flow := recharge.NewFlow(h.Plans, h.Recharges, h.Handoff, h.Session.IsLoggedIn)
	if err := flow.Begin(ctx); err != nil {
		return err
	}

	if *phone != "" {
		if err := flow.SetMobileNumber(*phone); err != nil {
			return err
		}
	}
	if *operator != "" {
		if err := flow.SelectOperator(ctx, *operator); err != nil {
			return err
		}
	}
	if *planID != "" {
		if err := flow.SelectPlan(*planID); err != nil {
			return err
		}
	}
	if *offer != "" {
		if err := flow.SelectOffer(*offer); err != nil {
			return err
		}
	}

	receipt, err := flow.Submit(ctx)
	if err != nil {
		return err
	}

	h.printf("Recharge successful.\n")
	h.printf("Transaction: %s\nNumber:      %s\nOperator:    %s\nPlan:        %s\nPaid:        ₹%d\n",
		receipt.TransactionID, receipt.PhoneNumber, receipt.Operator, receipt.Plan.Name, receipt.Amount)
	if receipt.Amount < receipt.Plan.Price {
		h.printf("Saved:       ₹%d\n", receipt.Plan.Price-receipt.Amount)
	}
	return nil
}

// History lists the caller's own transactions with an optional status filter.
func (h *Handler) History(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(h.Out)
	status := fs.String("status", "", "filter by status (pending, success, failed)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := h.requireLogin(); err != nil {
		return err
	}

	view := views.NewHistoryView(h.Recharges)
	if err := view.Load(ctx); err != nil {
		return err
	}
	view.SetStatusFilter(*status)

	transactions := view.Transactions()
	if len(transactions) == 0 {
		h.printf("No transactions.\n")
		return nil
	}
	for _, tx := range transactions {
		h.printTransaction(tx)
	}
	return nil
}

// Receipt shows the outcome of the most recent recharge, once.
func (h *Handler) Receipt(ctx context.Context, args []string) error {
	view := views.NewReceiptView(h.Handoff)
	receipt, err := view.Load(ctx)
	if err != nil {
		return err
	}
	h.printf("Transaction: %s\nNumber:      %s\nOperator:    %s\nPaid:        ₹%d\n",
		receipt.TransactionID, receipt.PhoneNumber, receipt.Operator, receipt.Amount)
	return nil
}
