// Package views holds the client's screen-level state holders. Each view
// caches what it fetched and exposes a snapshot; refetching replaces the
// cache wholesale.
package views

import (
	"context"
	"sync"
	"time"

	"mobile-recharge-client/internal/pkg/consts"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
	"mobile-recharge-client/internal/pkg/models"
	"mobile-recharge-client/internal/pkg/notify"
	"mobile-recharge-client/internal/service/catalog"
	"mobile-recharge-client/internal/service/interfaces"
)

// PlansView is the plan-browsing screen. While open it keeps itself fresh
// three ways: change signals from other instances, a periodic poll and an
// explicit focus trigger. Filters only narrow the cached list; they never
// cause a fetch.
type PlansView struct {
	api      interfaces.PlansAPI
	notifier interfaces.ChangeNotifier
	interval time.Duration

	mu         sync.Mutex
	generation uint64
	plans      []models.Plan
	filter     catalog.PlanFilter
	lastErr    error
	onUpdate   func()

	sub    notify.Subscription
	stop   chan struct{}
	stopWG sync.WaitGroup
}

func NewPlansView(api interfaces.PlansAPI, notifier interfaces.ChangeNotifier) *PlansView {
	return &PlansView{
		api:      api,
		notifier: notifier,
		interval: consts.PlanRefreshInterval,
	}
}

// Open loads the catalog and starts the freshness machinery. The periodic
// poll exists because change signals are best-effort; a missed signal is
// repaired within one interval. A failed initial load tears everything back
// down, so an errored Open never leaks the poller or the subscription.
func (v *PlansView) Open(ctx context.Context) error {
	sub, err := v.notifier.Subscribe(ctx, consts.TopicPlansUpdated, func(ctx context.Context) {
		logger.CtxDebug(ctx, log_messages.ViewRefetchTriggered)
		_ = v.Refresh(ctx)
	})
	if err != nil {
		return err
	}
	v.sub = sub

	v.stop = make(chan struct{})
	v.stopWG.Add(1)
	go v.pollLoop(ctx)

	if err := v.Refresh(ctx); err != nil {
		v.Close()
		return err
	}
	return nil
}

func (v *PlansView) pollLoop(ctx context.Context) {
	defer v.stopWG.Done()
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()
	for {
		select {
		case <-v.stop:
			return
		case <-ticker.C:
			_ = v.Refresh(ctx)
		}
	}
}

// Close stops the poll and the change subscription. A load still in flight
// when the view closes is discarded when it lands.
func (v *PlansView) Close() {
	if v.stop != nil {
		close(v.stop)
		v.stopWG.Wait()
		v.stop = nil
	}
	if v.sub != nil {
		_ = v.sub.Close()
		v.sub = nil
	}
	v.mu.Lock()
	v.generation++
	v.mu.Unlock()
}

// OnFocus refetches immediately, covering the window where both the signal
// and the poll were missed while the instance was in the background.
func (v *PlansView) OnFocus(ctx context.Context) {
	logger.CtxDebug(ctx, log_messages.ViewRefetchTriggered)
	_ = v.Refresh(ctx)
}

// Refresh fetches the full catalog and replaces the cache. Concurrent
// refreshes race on the network but only the newest load may apply; a
// superseded response is dropped whether it succeeded or not.
func (v *PlansView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.mu.Unlock()

	plans, err := v.api.GetPlans(ctx, "")

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		logger.CtxDebug(ctx, log_messages.StaleResponseDiscarded)
		return nil
	}
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorLoadingPlans, err)
		v.lastErr = err
		return err
	}
	v.plans = plans
	v.lastErr = nil
	onUpdate := v.onUpdate
	if onUpdate != nil {
		// Release the lock before notifying so the callback can read the view.
		v.mu.Unlock()
		onUpdate()
		v.mu.Lock()
	}
	return nil
}

// SetOnUpdate registers a callback invoked after every applied refresh.
// Must be set before Open.
func (v *PlansView) SetOnUpdate(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onUpdate = fn
}

// SetFilter replaces the active criteria. Purely local.
func (v *PlansView) SetFilter(filter catalog.PlanFilter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = filter
}

// Plans returns the cached catalog narrowed by the active filter.
func (v *PlansView) Plans() []models.Plan {
	v.mu.Lock()
	defer v.mu.Unlock()
	return catalog.FilterPlans(v.plans, v.filter)
}

// Err returns the failure of the most recent applied load, if any.
func (v *PlansView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}
