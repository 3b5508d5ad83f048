package consts

import "time"

// Durable storage keys shared by every client instance of a profile.
// Two running instances observe the same keys with last-write-wins semantics;
// there is no locking around them.
const (
	KeyToken     = "token"
	KeyUser      = "user"
	KeyLoginTime = "loginTime"

	// Hand-off keys, written by one view and consumed (read then removed)
	// by the next.
	KeySelectedPlan = "selectedPlan"
	KeyRechargeData = "rechargeData"

	KeyTheme = "theme"
)

// TopicPlansUpdated doubles as the notifier storage key and the pub/sub
// channel name for plan catalog mutations.
const TopicPlansUpdated = "plansUpdated"

const (
	// SessionTTL is the client-enforced validity window of a login token.
	// A session whose age is exactly SessionTTL counts as expired.
	SessionTTL = 10 * time.Minute

	// PlanRefreshInterval is the polling fallback used by list views in case
	// a notifier signal is missed.
	PlanRefreshInterval = 30 * time.Second
)

// RecentTransactionCount bounds the recent-transactions slice on the admin
// dashboard.
const RecentTransactionCount = 5

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
