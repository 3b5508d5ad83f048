// Package repository implements the durable client-side store: the handful
// of well-known keys (session, hand-offs, notifier, theme) that every client
// instance of a profile shares with last-write-wins semantics.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned when a required key is absent.
var ErrKeyNotFound = errors.New("key not found")

type LocalStore struct {
	client *redis.Client
}

func NewLocalStore(client *redis.Client) *LocalStore {
	return &LocalStore{client: client}
}

// Set stores a raw string value. Keys never expire on the Redis side; session
// lifetime is computed from loginTime.
func (s *LocalStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Get returns the value for key, or ErrKeyNotFound.
func (s *LocalStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (s *LocalStore) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	val, err := s.client.Exists(ctx, key).Result()
	return val > 0, err
}

// Token implements the API client's token source by re-reading the stored
// token on every call, so a re-login in another instance takes effect
// immediately.
func (s *LocalStore) Token(ctx context.Context) string {
	token, err := s.Get(ctx, consts.KeyToken)
	if err != nil {
		return ""
	}
	return token
}

// SaveSession persists the three session keys.
func (s *LocalStore) SaveSession(ctx context.Context, token string, user models.User, loginTime time.Time) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.Set(ctx, consts.KeyToken, token); err != nil {
		return err
	}
	if err := s.Set(ctx, consts.KeyUser, string(userData)); err != nil {
		return err
	}
	return s.Set(ctx, consts.KeyLoginTime, strconv.FormatInt(loginTime.UnixMilli(), 10))
}

// LoadSession reads the persisted session. found is false when any of the
// three keys is missing or unparseable.
func (s *LocalStore) LoadSession(ctx context.Context) (token string, user models.User, loginTime time.Time, found bool, err error) {
	token, err = s.Get(ctx, consts.KeyToken)
	if errors.Is(err, ErrKeyNotFound) {
		return "", models.User{}, time.Time{}, false, nil
	}
	if err != nil {
		return "", models.User{}, time.Time{}, false, err
	}

	userData, err := s.Get(ctx, consts.KeyUser)
	if errors.Is(err, ErrKeyNotFound) {
		return "", models.User{}, time.Time{}, false, nil
	}
	if err != nil {
		return "", models.User{}, time.Time{}, false, err
	}
	if jsonErr := json.Unmarshal([]byte(userData), &user); jsonErr != nil {
		return "", models.User{}, time.Time{}, false, nil
	}

	millisStr, err := s.Get(ctx, consts.KeyLoginTime)
	if errors.Is(err, ErrKeyNotFound) {
		return "", models.User{}, time.Time{}, false, nil
	}
	if err != nil {
		return "", models.User{}, time.Time{}, false, err
	}
	millis, parseErr := strconv.ParseInt(millisStr, 10, 64)
	if parseErr != nil {
		return "", models.User{}, time.Time{}, false, nil
	}

	return token, user, time.UnixMilli(millis), true, nil
}

// ClearSession removes all session keys. Safe to call when none exist.
func (s *LocalStore) ClearSession(ctx context.Context) error {
	return s.Delete(ctx, consts.KeyToken, consts.KeyUser, consts.KeyLoginTime)
}

// SaveSelectedPlan writes the plan-browsing → checkout hand-off.
func (s *LocalStore) SaveSelectedPlan(ctx context.Context, plan models.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	return s.Set(ctx, consts.KeySelectedPlan, string(data))
}

// TakeSelectedPlan consumes the hand-off: the key is removed on a successful
// read so the plan is applied once.
func (s *LocalStore) TakeSelectedPlan(ctx context.Context) (*models.Plan, error) {
	data, err := s.Get(ctx, consts.KeySelectedPlan)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plan models.Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		// A corrupt hand-off is dropped rather than applied.
		_ = s.Delete(ctx, consts.KeySelectedPlan)
		return nil, nil
	}
	if err := s.Delete(ctx, consts.KeySelectedPlan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// SaveReceipt writes the checkout → success-view hand-off.
func (s *LocalStore) SaveReceipt(ctx context.Context, receipt models.Receipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	return s.Set(ctx, consts.KeyRechargeData, string(data))
}

// TakeReceipt consumes the receipt hand-off. Returns nil when absent.
func (s *LocalStore) TakeReceipt(ctx context.Context) (*models.Receipt, error) {
	data, err := s.Get(ctx, consts.KeyRechargeData)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var receipt models.Receipt
	if err := json.Unmarshal([]byte(data), &receipt); err != nil {
		_ = s.Delete(ctx, consts.KeyRechargeData)
		return nil, nil
	}
	if err := s.Delete(ctx, consts.KeyRechargeData); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Theme returns the stored theme preference, defaulting to light.
func (s *LocalStore) Theme(ctx context.Context) string {
	theme, err := s.Get(ctx, consts.KeyTheme)
	if err != nil || (theme != consts.ThemeLight && theme != consts.ThemeDark) {
		return consts.ThemeLight
	}
	return theme
}

func (s *LocalStore) SetTheme(ctx context.Context, theme string) error {
	return s.Set(ctx, consts.KeyTheme, theme)
}
