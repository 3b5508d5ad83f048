package log_messages

// Configuration and startup
const (
	FailedLoadingConfiguration = "Failed loading configuration"
	CleanupStarted             = "Cleaning up resources..."
	CleanupCompleted           = "Resource cleanup completed."
	ClientExiting              = "Client exiting"
)

// Remote API
const (
	ErrorFailedToBuildAPIRequest  = "failed to build API request: %w"
	ErrorFailedToSendAPIRequest   = "failed to send API request: %w"
	ErrorFailedToDecodeAPIBody    = "failed to decode API response body: %w"
	ErrorFailedToEncodeAPIBody    = "failed to encode API request body: %w"
	ErrorAPIRequestFailed         = "API request failed"
	ReceivedAPIResponse           = "Received API response"
	SendingAPIRequest             = "Sending API request"
	ErrorFailedToCloseAPIRespBody = "Failed to close API response body"
)

// Session
const (
	SessionRestored       = "Session restored from durable storage"
	SessionRestoreExpired = "Stored session is expired, clearing it"
	SessionExpiredNotice  = "Session expired. Please login again."
	SessionLoggedIn       = "Login successful"
	SessionLoggedOut      = "Session cleared"
	ErrorSavingSession    = "Failed to persist session"
	ErrorClearingSession  = "Failed to clear session keys"
	ErrorReadingSession   = "Failed to read stored session"
)

// Notifier
const (
	NotifierAnnounced        = "Change announced"
	NotifierSignalReceived   = "Change signal received"
	NotifierSignalOwn        = "Ignoring self-originated change signal"
	NotifierKeyCleared       = "Notifier key cleared after refetch"
	ErrorNotifierAnnounce    = "Failed to announce change"
	ErrorNotifierSubscribe   = "Failed to subscribe to change signals"
	ErrorNotifierKeyClearing = "Failed to clear notifier key"
)

// Views
const (
	ErrorLoadingPlans      = "Failed to load plans"
	ErrorLoadingUsers      = "Failed to load users"
	ErrorLoadingRecharges  = "Failed to load recharges"
	ErrorLoadingHistory    = "Failed to load recharge history"
	StaleResponseDiscarded = "Discarding response for a closed or superseded view load"
	ViewRefetchTriggered   = "View refetch triggered"
)

// Recharge flow
const (
	RechargeSubmitting    = "Submitting recharge"
	RechargeSucceeded     = "Recharge succeeded"
	RechargeFailed        = "Recharge failed"
	ErrorSavingReceipt    = "Failed to persist recharge receipt"
	ErrorFetchingOperator = "Failed to fetch plans for operator"
)
