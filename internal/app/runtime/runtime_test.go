package runtime

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-recharge-client/internal/app/handlers"
	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/pkg/validation"
	"mobile-recharge-client/internal/service/session"
)

type memStore struct {
	token     string
	user      models.User
	loginTime time.Time
	has       bool
	theme     string
}

func (m *memStore) SaveSession(_ context.Context, token string, user models.User, loginTime time.Time) error {
	m.token, m.user, m.loginTime, m.has = token, user, loginTime, true
	return nil
}

func (m *memStore) LoadSession(context.Context) (string, models.User, time.Time, bool, error) {
	if !m.has {
		return "", models.User{}, time.Time{}, false, nil
	}
	return m.token, m.user, m.loginTime, true, nil
}

func (m *memStore) ClearSession(context.Context) error {
	m.has = false
	return nil
}

func (m *memStore) Theme(context.Context) string { return m.theme }
func (m *memStore) SetTheme(_ context.Context, theme string) error {
	m.theme = theme
	return nil
}

type noAuth struct{}

func (noAuth) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return &models.LoginResponse{Success: false, Message: "unavailable"}, nil
}

func (noAuth) Register(context.Context, models.RegisterRequest) (*models.RegisterResponse, error) {
	return &models.RegisterResponse{Success: false}, nil
}

func newTestApp(t *testing.T) (*App, *memStore, *bytes.Buffer) {
	t.Helper()
	store := &memStore{}
	validator, err := validation.New()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app := &App{
		Session: session.NewManager(store, noAuth{}),
		Handler: &handlers.Handler{
			Session:   session.NewManager(store, noAuth{}),
			Validator: validator,
			Out:       out,
		},
	}
	// Dispatch consults the handler's manager; keep both pointing at one.
	app.Session = app.Handler.Session
	return app, store, out
}

func TestRunWithoutArgsPrintsUsage(t *testing.T) {
	app, _, out := newTestApp(t)
	require.NoError(t, app.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunUnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t)
	err := app.Run(context.Background(), []string{"frobnicate"})
	assert.ErrorIs(t, err, handlers.ErrUnknownCommand)
}

func TestRunRestoresSessionBeforeDispatch(t *testing.T) {
	app, store, out := newTestApp(t)
	store.has = true
	store.token = "tok"
	store.user = models.User{ID: "u1", Username: "arya", Email: "a@b.com", Role: "user"}
	store.loginTime = time.Now().Add(-time.Minute)

	require.NoError(t, app.Run(context.Background(), []string{"whoami"}))
	assert.Contains(t, out.String(), "arya")
}

func TestRunExpiredSessionIsNotRestored(t *testing.T) {
	app, store, out := newTestApp(t)
	store.has = true
	store.token = "tok"
	store.user = models.User{ID: "u1", Username: "arya"}
	store.loginTime = time.Now().Add(-11 * time.Minute)

	require.NoError(t, app.Run(context.Background(), []string{"whoami"}))
	assert.Contains(t, out.String(), "Not logged in")
	assert.False(t, store.has)
}

func TestNewConnectsAgainstRealAddr(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("REDIS_ADDR", mr.Addr())
	t.Setenv("CONFIG_PATH", "../../../configs/config.yaml")

	app, err := New(context.Background())
	require.NoError(t, err)
	require.NotNil(t, app.Store)
	require.NotNil(t, app.Handler)

	app.Shutdown(context.Background())
}
