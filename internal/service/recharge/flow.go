// Package recharge drives the recharge checkout: collecting the form,
// applying at most one discount and submitting to the backend.
package recharge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/service/interfaces"
)

// State is the checkout lifecycle position.
type State string

const (
	StateIdle       State = "idle"
	StateFilling    State = "filling"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrNotAuthenticated aborts a submit before any network call is made.
	ErrNotAuthenticated = errors.New("login required to recharge")
	// ErrIncompleteForm aborts a submit with a missing field.
	ErrIncompleteForm = errors.New("mobile number, operator and plan are required")
	// ErrInvalidMobileNumber rejects a number outside the Indian mobile range.
	ErrInvalidMobileNumber = errors.New("enter a valid 10-digit mobile number")
	// ErrSubmitInProgress rejects a concurrent submit.
	ErrSubmitInProgress = errors.New("a recharge is already being submitted")
	// ErrUnknownOffer rejects a code outside the catalog.
	ErrUnknownOffer = errors.New("unknown offer code")
)

var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// Flow is a single checkout attempt. Not safe for concurrent use; each
// command invocation drives one flow from one goroutine.
type Flow struct {
	plans     interfaces.PlansAPI
	recharges interfaces.RechargeAPI
	handoff   interfaces.HandoffStore
	authed    func() bool
	now       func() time.Time

	state          State
	phone          string
	operator       string
	availablePlans []models.Plan
	plan           *models.Plan
	offer          *models.Offer
	failure        error
}

func NewFlow(plans interfaces.PlansAPI, recharges interfaces.RechargeAPI, handoff interfaces.HandoffStore, authed func() bool) *Flow {
	return &Flow{
		plans:     plans,
		recharges: recharges,
		handoff:   handoff,
		authed:    authed,
		now:       time.Now,
		state:     StateIdle,
	}
}

func (f *Flow) State() State                  { return f.state }
func (f *Flow) SelectedPlan() *models.Plan    { return f.plan }
func (f *Flow) SelectedOffer() *models.Offer  { return f.offer }
func (f *Flow) AvailablePlans() []models.Plan { return f.availablePlans }
func (f *Flow) LastFailure() error            { return f.failure }

// Begin adopts a pending plan hand-off from the browsing view, pre-filling
// operator and plan. The hand-off is consumed even when it is not used.
func (f *Flow) Begin(ctx context.Context) error {
	plan, err := f.handoff.TakeSelectedPlan(ctx)
	if err != nil {
		return err
	}
	f.state = StateFilling
	if plan != nil {
		f.operator = plan.Operator
		f.plan = plan
		f.availablePlans = []models.Plan{*plan}
	}
	return nil
}

// SetMobileNumber records the target number.
func (f *Flow) SetMobileNumber(number string) error {
	if !mobileRegex.MatchString(number) {
		return ErrInvalidMobileNumber
	}
	f.phone = number
	if f.state == StateIdle {
		f.state = StateFilling
	}
	return nil
}

// SelectOperator fetches that operator's plans and discards any previously
// selected plan and offer, since they belonged to the old operator.
func (f *Flow) SelectOperator(ctx context.Context, operator string) error {
	if !consts.IsValidOperator(operator) {
		return fmt.Errorf("unknown operator %q", operator)
	}

	plans, err := f.plans.GetPlans(ctx, operator)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingOperator, err, slog.String("operator", operator))
		return err
	}

	f.operator = operator
	f.availablePlans = plans
	f.plan = nil
	f.offer = nil
	if f.state == StateIdle {
		f.state = StateFilling
	}
	return nil
}

// SelectPlan picks a plan from the fetched list by id. Changing plans drops
// the offer so a stale discount cannot survive a cheaper selection.
func (f *Flow) SelectPlan(id string) error {
	for i := range f.availablePlans {
		if f.availablePlans[i].Identifier() == id {
			f.plan = &f.availablePlans[i]
			f.offer = nil
			return nil
		}
	}
	return fmt.Errorf("plan %q is not in the fetched list", id)
}

// SelectOffer records a catalog offer. Any catalog offer is selectable;
// qualification is checked only when the amount is computed, and a
// disqualified offer simply does not reduce it. Passing an empty code clears
// the current offer.
func (f *Flow) SelectOffer(code string) error {
	if code == "" {
		f.offer = nil
		return nil
	}
	offer, ok := OfferByCode(code)
	if !ok {
		return ErrUnknownOffer
	}
	f.offer = &offer
	return nil
}

// Amount returns the payable amount under the current plan and offer.
func (f *Flow) Amount() int {
	if f.plan == nil {
		return 0
	}
	amount, _ := ApplyOffer(f.plan.Price, f.offer)
	return amount
}

// Submit sends the recharge. The session is checked before anything leaves
// the process. A rejected or failed submit keeps every selection so the user
// can retry; an accepted one persists the receipt for the success view.
func (f *Flow) Submit(ctx context.Context) (*models.Receipt, error) {
	switch f.state {
	case StateSubmitting:
		return nil, ErrSubmitInProgress
	case StateFilling, StateFailed, StateIdle:
	default:
		return nil, fmt.Errorf("cannot submit from state %q", f.state)
	}

	if !f.authed() {
		return nil, ErrNotAuthenticated
	}
	if f.phone == "" || f.operator == "" || f.plan == nil {
		return nil, ErrIncompleteForm
	}

	amount, discount := ApplyOffer(f.plan.Price, f.offer)
	req := models.RechargeRequest{
		PhoneNumber:     f.phone,
		Operator:        f.operator,
		Plan:            f.plan.Identifier(),
		Amount:          amount,
		OriginalAmount:  f.plan.Price,
		DiscountApplied: discount,
	}
	if f.offer != nil && discount > 0 {
		req.DiscountCode = f.offer.Code
	}

	f.state = StateSubmitting
	logger.CtxInfo(ctx, log_messages.RechargeSubmitting,
		slog.String("operator", f.operator),
		slog.Int("amount", amount))

	resp, err := f.recharges.CreateRecharge(ctx, req)
	if err != nil {
		f.state = StateFailed
		f.failure = err
		logger.CtxError(ctx, log_messages.RechargeFailed, err)
		return nil, err
	}
	if !resp.Success {
		err := errors.New(resp.Message)
		if resp.Message == "" {
			err = errors.New("recharge was rejected")
		}
		f.state = StateFailed
		f.failure = err
		logger.CtxError(ctx, log_messages.RechargeFailed, err)
		return nil, err
	}

	receipt := models.Receipt{
		PhoneNumber:   f.phone,
		Operator:      f.operator,
		Amount:        amount,
		Plan:          *f.plan,
		TransactionID: f.transactionID(resp),
		Timestamp:     f.now(),
	}
	if err := f.handoff.SaveReceipt(ctx, receipt); err != nil {
		// The recharge went through; a lost receipt must not fail the flow.
		logger.CtxError(ctx, log_messages.ErrorSavingReceipt, err)
	}

	f.state = StateSucceeded
	f.failure = nil
	logger.CtxInfo(ctx, log_messages.RechargeSucceeded,
		slog.String("transaction_id", receipt.TransactionID))
	return &receipt, nil
}

// transactionID prefers the backend-issued id and falls back to a locally
// generated one so the receipt is never blank.
func (f *Flow) transactionID(resp *models.RechargeResponse) string {
	if resp.Recharge != nil && resp.Recharge.TransactionID != "" {
		return resp.Recharge.TransactionID
	}
	return consts.TransactionIDPrefix + strconv.FormatInt(f.now().UnixMilli(), 10)
}
