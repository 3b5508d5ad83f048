// Package handlers maps CLI commands onto the services. Each command parses
// its own flags, drives one flow and prints a plain-text result.
package handlers

import (
	"errors"
	"fmt"
	"io"

	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/pkg/validation"
	"mobile-recharge-client/internal/service/interfaces"
	"mobile-recharge-client/internal/service/session"
)

// ErrUnknownCommand is returned for a command outside the dispatch table.
var ErrUnknownCommand = errors.New("unknown command")

// Handler carries the shared dependencies of every command.
type Handler struct {
	Session   *session.Manager
	Validator *validation.Validator
	Plans     interfaces.PlansAPI
	Recharges interfaces.RechargeAPI
	Users     interfaces.UsersAPI
	Notifier  interfaces.ChangeNotifier
	Handoff   interfaces.HandoffStore
	Out       io.Writer
}

func (h *Handler) printf(format string, args ...any) {
	fmt.Fprintf(h.Out, format, args...)
}

func (h *Handler) printPlan(plan models.Plan) {
	h.printf("%-26s %-8s %-10s ₹%-6d %3d days  %s\n",
		plan.Identifier(), plan.Operator, plan.Category, plan.Price, plan.Validity, plan.Name)
}

func (h *Handler) printTransaction(tx models.RechargeTransaction) {
	h.printf("%-20s %-12s %-8s ₹%-6d %s\n",
		tx.TransactionID, tx.PhoneNumber, tx.Operator, tx.Amount, tx.Status)
}

func (h *Handler) requireLogin() (*models.User, error) {
	user := h.Session.CurrentUser()
	if user == nil {
		return nil, session.ErrNotAuthenticated
	}
	return user, nil
}
