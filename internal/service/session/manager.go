// Package session owns the authenticated session: establishing it, restoring
// it on startup and enforcing the client-side inactivity window.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/service/interfaces"
)

var (
	// ErrNotAuthenticated is returned by operations that need a live session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrLoginFailed wraps a rejected credential exchange.
	ErrLoginFailed = errors.New("login failed")
)

// Manager enforces the session lifetime locally. The backend token may well
// outlive it; the expiry below is a deliberate client-side policy.
type Manager struct {
	store    interfaces.SessionStore
	auth     interfaces.AuthAPI
	ttl      time.Duration
	now      func() time.Time
	onExpire func()

	mu    sync.Mutex
	user  *models.User
	timer *time.Timer
	epoch uint64
}

// Option configures a Manager. Used by tests to shrink the window and pin
// the clock.
type Option func(*Manager)

func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.ttl = ttl }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithExpiryNotice registers a callback invoked at most once per session when
// the inactivity window elapses.
func WithExpiryNotice(fn func()) Option {
	return func(m *Manager) { m.onExpire = fn }
}

func NewManager(store interfaces.SessionStore, auth interfaces.AuthAPI, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		auth:  auth,
		ttl:   consts.SessionTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CurrentUser returns the cached user of the live session, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

func (m *Manager) IsLoggedIn() bool {
	return m.CurrentUser() != nil
}

// Login exchanges credentials for a token and establishes a fresh session.
// A re-login overwrites whatever session existed before.
func (m *Manager) Login(ctx context.Context, email, password, role string) (*models.User, error) {
	resp, err := m.auth.Login(ctx, models.LoginRequest{Email: email, Password: password, Role: role})
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.Token == "" {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, ErrLoginFailed
	}

	loginTime := m.now()
	if err := m.store.SaveSession(ctx, resp.Token, resp.User, loginTime); err != nil {
		logger.CtxError(ctx, log_messages.ErrorSavingSession, err)
		return nil, err
	}

	m.mu.Lock()
	m.user = &resp.User
	m.armTimerLocked(m.ttl)
	m.mu.Unlock()

	logger.CtxInfo(ctx, log_messages.SessionLoggedIn, slog.String("email", email))
	return &resp.User, nil
}

// Register creates an account. It never establishes a session; the caller
// logs in afterwards.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	return m.auth.Register(ctx, req)
}

// Logout invalidates the session. Safe to call when no session exists.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.user = nil
	m.stopTimerLocked()
	m.mu.Unlock()

	if err := m.store.ClearSession(ctx); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClearingSession, err)
		return err
	}
	logger.CtxInfo(ctx, log_messages.SessionLoggedOut)
	return nil
}

// RestoreOnStart adopts a persisted session if its window has not elapsed.
// A session aged exactly the full window counts as expired. Expired or
// unreadable sessions are cleared so the next start is clean.
func (m *Manager) RestoreOnStart(ctx context.Context) (*models.User, error) {
	_, user, loginTime, found, err := m.store.LoadSession(ctx)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorReadingSession, err)
		return nil, err
	}
	if !found {
		return nil, nil
	}

	elapsed := m.now().Sub(loginTime)
	if elapsed >= m.ttl {
		logger.CtxInfo(ctx, log_messages.SessionRestoreExpired,
			slog.Duration("elapsed", elapsed))
		if err := m.store.ClearSession(ctx); err != nil {
			logger.CtxError(ctx, log_messages.ErrorClearingSession, err)
			return nil, err
		}
		return nil, nil
	}

	m.mu.Lock()
	m.user = &user
	// Re-arm for the remainder, not a fresh window.
	m.armTimerLocked(m.ttl - elapsed)
	m.mu.Unlock()

	logger.CtxInfo(ctx, log_messages.SessionRestored,
		slog.String("username", user.Username),
		slog.Duration("remaining", m.ttl-elapsed))
	return &user, nil
}

// ToggleTheme flips the persisted theme preference and returns the new value.
func (m *Manager) ToggleTheme(ctx context.Context) (string, error) {
	next := consts.ThemeDark
	if m.store.Theme(ctx) == consts.ThemeDark {
		next = consts.ThemeLight
	}
	if err := m.store.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// armTimerLocked schedules expiry after d. Each arm bumps the epoch so a
// stale timer from a superseded session cannot fire the notice.
func (m *Manager) armTimerLocked(d time.Duration) {
	m.stopTimerLocked()
	m.epoch++
	epoch := m.epoch
	m.timer = time.AfterFunc(d, func() { m.expire(epoch) })
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) expire(epoch uint64) {
	m.mu.Lock()
	if epoch != m.epoch || m.user == nil {
		m.mu.Unlock()
		return
	}
	m.user = nil
	m.timer = nil
	notice := m.onExpire
	m.mu.Unlock()

	ctx := context.Background()
	if err := m.store.ClearSession(ctx); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClearingSession, err)
	}
	logger.CtxInfo(ctx, log_messages.SessionExpiredNotice)
	if notice != nil {
		notice()
	}
}
