package cleanup

import (
	"context"

	redisdb "mobile-recharge-client/internal/pkg/db/redis"
	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"
)

// Closer is anything holding a resource that must be released on exit.
type Closer interface {
	Close() error
}

// CleanupResources releases everything the client holds. Failures are logged
// and swallowed; shutdown always completes.
func CleanupResources(ctx context.Context, redisClient *redisdb.RedisClient, closers ...Closer) {
	logger.CtxInfo(ctx, log_messages.CleanupStarted)

	for _, closer := range closers {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			logger.CtxError(ctx, "Failed to close resource", err)
		}
	}

	if redisClient != nil && redisClient.Client != nil {
		if err := redisdb.Disconnect(redisClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}

	logger.CtxInfo(ctx, log_messages.CleanupCompleted)
}
