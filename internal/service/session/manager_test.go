package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-recharge-client/internal/pkg/models"
)

type fakeStore struct {
	mu        sync.Mutex
	token     string
	user      models.User
	loginTime time.Time
	hasAll    bool
	theme     string
	saveErr   error
}

func (f *fakeStore) SaveSession(_ context.Context, token string, user models.User, loginTime time.Time) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token, f.user, f.loginTime, f.hasAll = token, user, loginTime, true
	return nil
}

func (f *fakeStore) LoadSession(_ context.Context) (string, models.User, time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasAll {
		return "", models.User{}, time.Time{}, false, nil
	}
	return f.token, f.user, f.loginTime, true, nil
}

func (f *fakeStore) ClearSession(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token, f.user, f.loginTime, f.hasAll = "", models.User{}, time.Time{}, false
	return nil
}

func (f *fakeStore) Theme(_ context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.theme == "" {
		return "light"
	}
	return f.theme
}

func (f *fakeStore) SetTheme(_ context.Context, theme string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.theme = theme
	return nil
}

func (f *fakeStore) stored() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasAll
}

type fakeAuth struct {
	loginResp *models.LoginResponse
	loginErr  error
	regResp   *models.RegisterResponse
}

func (f *fakeAuth) Login(context.Context, models.LoginRequest) (*models.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(context.Context, models.RegisterRequest) (*models.RegisterResponse, error) {
	return f.regResp, nil
}

func okAuth() *fakeAuth {
	return &fakeAuth{loginResp: &models.LoginResponse{
		Success: true,
		Token:   "tok-1",
		User:    models.User{ID: "u1", Username: "arya", Role: "user"},
	}}
}

func TestLoginEstablishesSession(t *testing.T) {
	store := &fakeStore{}
	m := NewManager(store, okAuth())

	user, err := m.Login(context.Background(), "arya@example.com", "Str0ngpass", "")
	require.NoError(t, err)
	assert.Equal(t, "arya", user.Username)
	assert.True(t, m.IsLoggedIn())
	assert.True(t, store.stored())
}

func TestLoginRejected(t *testing.T) {
	t.Run("server message surfaces", func(t *testing.T) {
		auth := &fakeAuth{loginResp: &models.LoginResponse{Success: false, Message: "Invalid credentials"}}
		m := NewManager(&fakeStore{}, auth)

		_, err := m.Login(context.Background(), "a@b.com", "wrong1", "")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
		assert.False(t, m.IsLoggedIn())
	})

	t.Run("empty token with no message", func(t *testing.T) {
		auth := &fakeAuth{loginResp: &models.LoginResponse{Success: true}}
		m := NewManager(&fakeStore{}, auth)

		_, err := m.Login(context.Background(), "a@b.com", "secret1", "")
		assert.ErrorIs(t, err, ErrLoginFailed)
	})
}

func TestLogoutIdempotent(t *testing.T) {
	store := &fakeStore{}
	m := NewManager(store, okAuth())

	_, err := m.Login(context.Background(), "a@b.com", "secret1", "")
	require.NoError(t, err)

	require.NoError(t, m.Logout(context.Background()))
	assert.False(t, m.IsLoggedIn())
	assert.False(t, store.stored())

	// Logging out again must succeed without a session.
	assert.NoError(t, m.Logout(context.Background()))
}

func TestRestoreOnStart(t *testing.T) {
	base := time.Now()

	t.Run("fresh session restores", func(t *testing.T) {
		store := &fakeStore{}
		require.NoError(t, store.SaveSession(context.Background(), "tok", models.User{ID: "u1", Username: "arya"}, base.Add(-3*time.Minute)))

		m := NewManager(store, okAuth(), WithClock(func() time.Time { return base }))
		user, err := m.RestoreOnStart(context.Background())
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "arya", user.Username)
		assert.True(t, m.IsLoggedIn())
	})

	t.Run("session just inside the window restores", func(t *testing.T) {
		store := &fakeStore{}
		require.NoError(t, store.SaveSession(context.Background(), "tok", models.User{ID: "u1"}, base.Add(-10*time.Minute+time.Millisecond)))

		m := NewManager(store, okAuth(), WithClock(func() time.Time { return base }))
		user, err := m.RestoreOnStart(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("session aged exactly the window is expired", func(t *testing.T) {
		store := &fakeStore{}
		require.NoError(t, store.SaveSession(context.Background(), "tok", models.User{ID: "u1"}, base.Add(-10*time.Minute)))

		m := NewManager(store, okAuth(), WithClock(func() time.Time { return base }))
		user, err := m.RestoreOnStart(context.Background())
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.False(t, m.IsLoggedIn())
		assert.False(t, store.stored())
	})

	t.Run("no stored session", func(t *testing.T) {
		m := NewManager(&fakeStore{}, okAuth())
		user, err := m.RestoreOnStart(context.Background())
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func waitUntil(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestExpiryFiresOnceAndClears(t *testing.T) {
	store := &fakeStore{}
	var notices atomic.Int32
	m := NewManager(store, okAuth(),
		WithTTL(30*time.Millisecond),
		WithExpiryNotice(func() { notices.Add(1) }))

	_, err := m.Login(context.Background(), "a@b.com", "secret1", "")
	require.NoError(t, err)

	waitUntil(t, func() bool { return notices.Load() == 1 }, "expiry notice never fired")
	assert.False(t, m.IsLoggedIn())
	assert.False(t, store.stored())

	// No second notice after the session is already gone.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), notices.Load())
}

func TestLogoutDisarmsExpiry(t *testing.T) {
	store := &fakeStore{}
	var notices atomic.Int32
	m := NewManager(store, okAuth(),
		WithTTL(50*time.Millisecond),
		WithExpiryNotice(func() { notices.Add(1) }))

	_, err := m.Login(context.Background(), "a@b.com", "secret1", "")
	require.NoError(t, err)
	require.NoError(t, m.Logout(context.Background()))

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(0), notices.Load())
}

func TestReLoginSupersedesOldTimer(t *testing.T) {
	store := &fakeStore{}
	var notices atomic.Int32
	m := NewManager(store, okAuth(),
		WithTTL(60*time.Millisecond),
		WithExpiryNotice(func() { notices.Add(1) }))

	_, err := m.Login(context.Background(), "a@b.com", "secret1", "")
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)

	// Second login restarts the window; only the new timer may fire.
	_, err = m.Login(context.Background(), "a@b.com", "secret1", "")
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)
	assert.True(t, m.IsLoggedIn())

	waitUntil(t, func() bool { return notices.Load() == 1 }, "renewed window never expired")
	assert.Equal(t, int32(1), notices.Load())
}

func TestRestoreReArmsRemainderOnly(t *testing.T) {
	base := time.Now()
	store := &fakeStore{}
	require.NoError(t, store.SaveSession(context.Background(), "tok", models.User{ID: "u1"}, base.Add(-90*time.Millisecond)))

	var notices atomic.Int32
	m := NewManager(store, okAuth(),
		WithTTL(120*time.Millisecond),
		WithClock(func() time.Time { return base }),
		WithExpiryNotice(func() { notices.Add(1) }))

	user, err := m.RestoreOnStart(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)

	// Roughly 30ms remain; expiry must land well before a fresh full window.
	waitUntil(t, func() bool { return notices.Load() == 1 }, "restored session never expired")
	assert.False(t, m.IsLoggedIn())
}

func TestToggleTheme(t *testing.T) {
	store := &fakeStore{}
	m := NewManager(store, okAuth())
	ctx := context.Background()

	next, err := m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", next)

	next, err = m.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", next)
}
