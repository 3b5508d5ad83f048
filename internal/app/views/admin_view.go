package views

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/service/interfaces"
	"mobile-recharge-client/internal/service/reporting"
)

// ErrAdminOnly is returned before any admin endpoint is called when the
// cached role is not admin. The backend enforces the real check.
var ErrAdminOnly = errors.New("admin access required")

// AdminDashboardView aggregates plans, users and the full transaction set.
// The three loads are independent; one failing section leaves the other two
// populated.
type AdminDashboardView struct {
	plansAPI    interfaces.PlansAPI
	usersAPI    interfaces.UsersAPI
	rechargeAPI interfaces.RechargeAPI
	notifier    interfaces.ChangeNotifier
	isAdmin     func() bool

	mu        sync.Mutex
	plans     []models.Plan
	users     []models.User
	recharges []models.RechargeTransaction
}

func NewAdminDashboardView(
	plansAPI interfaces.PlansAPI,
	usersAPI interfaces.UsersAPI,
	rechargeAPI interfaces.RechargeAPI,
	notifier interfaces.ChangeNotifier,
	isAdmin func() bool,
) *AdminDashboardView {
	return &AdminDashboardView{
		plansAPI:    plansAPI,
		usersAPI:    usersAPI,
		rechargeAPI: rechargeAPI,
		notifier:    notifier,
		isAdmin:     isAdmin,
	}
}

// Load fetches all three sections. Failures are collected per section so a
// single broken endpoint does not blank the dashboard.
func (v *AdminDashboardView) Load(ctx context.Context) error {
	if !v.isAdmin() {
		return ErrAdminOnly
	}

	var errs []error

	if plans, err := v.plansAPI.GetPlans(ctx, ""); err != nil {
		logger.CtxError(ctx, log_messages.ErrorLoadingPlans, err)
		errs = append(errs, err)
	} else {
		v.mu.Lock()
		v.plans = plans
		v.mu.Unlock()
	}

	if users, err := v.usersAPI.GetUsers(ctx); err != nil {
		logger.CtxError(ctx, log_messages.ErrorLoadingUsers, err)
		errs = append(errs, err)
	} else {
		v.mu.Lock()
		v.users = users
		v.mu.Unlock()
	}

	if recharges, err := v.rechargeAPI.GetAllRecharges(ctx); err != nil {
		logger.CtxError(ctx, log_messages.ErrorLoadingRecharges, err)
		errs = append(errs, err)
	} else {
		v.mu.Lock()
		v.recharges = recharges
		v.mu.Unlock()
	}

	return errors.Join(errs...)
}

func (v *AdminDashboardView) Plans() []models.Plan {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.plans
}

func (v *AdminDashboardView) Users() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.users
}

func (v *AdminDashboardView) Recharges(status string) []models.RechargeTransaction {
	v.mu.Lock()
	defer v.mu.Unlock()
	return reporting.FilterTransactions(v.recharges, status)
}

// Stats recomputes the dashboard aggregates from the cached transactions.
func (v *AdminDashboardView) Stats() reporting.Stats {
	v.mu.Lock()
	defer v.mu.Unlock()
	return reporting.ComputeStats(v.recharges)
}

// AddPlan creates a plan and announces the change so browsing instances
// refetch.
func (v *AdminDashboardView) AddPlan(ctx context.Context, plan models.Plan) error {
	if !v.isAdmin() {
		return ErrAdminOnly
	}
	resp, err := v.plansAPI.CreatePlan(ctx, plan)
	if err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Message)
	}
	return v.announcePlansChanged(ctx)
}

func (v *AdminDashboardView) UpdatePlan(ctx context.Context, id string, plan models.Plan) error {
	if !v.isAdmin() {
		return ErrAdminOnly
	}
	resp, err := v.plansAPI.UpdatePlan(ctx, id, plan)
	if err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Message)
	}
	return v.announcePlansChanged(ctx)
}

func (v *AdminDashboardView) DeletePlan(ctx context.Context, id string) error {
	if !v.isAdmin() {
		return ErrAdminOnly
	}
	if err := v.plansAPI.DeletePlan(ctx, id); err != nil {
		return err
	}
	return v.announcePlansChanged(ctx)
}

// announcePlansChanged is best-effort: the mutation already committed, so a
// failed announcement only delays other instances until their next poll.
func (v *AdminDashboardView) announcePlansChanged(ctx context.Context) error {
	if err := v.notifier.Announce(ctx, consts.TopicPlansUpdated); err != nil {
		logger.CtxWarn(ctx, log_messages.ErrorNotifierAnnounce, slog.Any("error", err))
	}
	return nil
}
