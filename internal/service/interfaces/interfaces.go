// Package interfaces declares the seams between the services and their
// backing stores, remote client and notifier, so each service can be tested
// against fakes.
package interfaces

import (
	"context"
	"time"

	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/pkg/notify"
)

// SessionStore is the durable key set shared by every client instance of a
// profile.
type SessionStore interface {
	SaveSession(ctx context.Context, token string, user models.User, loginTime time.Time) error
	LoadSession(ctx context.Context) (token string, user models.User, loginTime time.Time, found bool, err error)
	ClearSession(ctx context.Context) error
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
}

// HandoffStore moves single-use values between flows.
type HandoffStore interface {
	SaveSelectedPlan(ctx context.Context, plan models.Plan) error
	TakeSelectedPlan(ctx context.Context) (*models.Plan, error)
	SaveReceipt(ctx context.Context, receipt models.Receipt) error
	TakeReceipt(ctx context.Context) (*models.Receipt, error)
}

// AuthAPI covers the unauthenticated account endpoints.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
}

// PlansAPI covers catalog reads and the admin-only mutations.
type PlansAPI interface {
	GetPlans(ctx context.Context, operator string) ([]models.Plan, error)
	CreatePlan(ctx context.Context, plan models.Plan) (*models.PlanMutationResponse, error)
	UpdatePlan(ctx context.Context, id string, plan models.Plan) (*models.PlanMutationResponse, error)
	DeletePlan(ctx context.Context, id string) error
}

// RechargeAPI covers recharge submission and the transaction listings.
type RechargeAPI interface {
	CreateRecharge(ctx context.Context, req models.RechargeRequest) (*models.RechargeResponse, error)
	GetHistory(ctx context.Context) ([]models.RechargeTransaction, error)
	GetAllRecharges(ctx context.Context) ([]models.RechargeTransaction, error)
	GetTransactionStats(ctx context.Context) (*models.ServerStats, error)
}

// UsersAPI covers user listing and the caller's own profile.
type UsersAPI interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetProfile(ctx context.Context) (*models.User, error)
}

// ChangeNotifier propagates mutations to other live client instances.
type ChangeNotifier interface {
	Announce(ctx context.Context, topic string) error
	Subscribe(ctx context.Context, topic string, handler func(ctx context.Context)) (notify.Subscription, error)
}
