// Package notify implements the cross-instance change signal. A topic is both
// a durable key (holding the epoch millis of the last announcement) and a
// pub/sub channel. Subscribers refetch on a signal and then remove the key,
// so the signal is best-effort and at-least-once, never ordered.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"mobile-recharge-client/internal/pkg/log_messages"
	"mobile-recharge-client/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// signal is the payload published on the topic channel. Origin lets a
// subscriber skip its own announcements: the instance that mutated already
// holds fresh data and must not refetch for its own write.
type signal struct {
	Origin string `json:"origin"`
	At     int64  `json:"at"`
}

// Notifier announces and observes changes on shared topics.
type Notifier struct {
	client *redis.Client
	origin string
	now    func() time.Time
}

func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{
		client: client,
		origin: uuid.NewString(),
		now:    time.Now,
	}
}

// Origin identifies this client instance in published signals.
func (n *Notifier) Origin() string {
	return n.origin
}

// Announce records the change instant under the topic key and publishes the
// signal. The writer must not assume subscribers observed it before
// continuing; delivery is asynchronous and unordered.
func (n *Notifier) Announce(ctx context.Context, topic string) error {
	millis := strconv.FormatInt(n.now().UnixMilli(), 10)
	if err := n.client.Set(ctx, topic, millis, 0).Err(); err != nil {
		logger.CtxError(ctx, log_messages.ErrorNotifierAnnounce, err, slog.String("topic", topic))
		return err
	}

	payload, err := json.Marshal(signal{Origin: n.origin, At: n.now().UnixMilli()})
	if err != nil {
		return err
	}
	if err := n.client.Publish(ctx, topic, payload).Err(); err != nil {
		logger.CtxError(ctx, log_messages.ErrorNotifierAnnounce, err, slog.String("topic", topic))
		return err
	}

	logger.CtxDebug(ctx, log_messages.NotifierAnnounced, slog.String("topic", topic))
	return nil
}

// Subscription is a live listener on one topic. Close stops the listener
// goroutine; it is safe to call more than once.
type Subscription interface {
	Close() error
}

type redisSubscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
}

func (s *redisSubscription) Close() error {
	err := s.pubsub.Close()
	<-s.done
	return err
}

// Subscribe listens for changes on topic. For every foreign signal, handler
// runs and the topic key is removed afterwards so the next observer does not
// refetch redundantly. Self-originated signals are ignored.
func (n *Notifier) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context)) (Subscription, error) {
	pubsub := n.client.Subscribe(ctx, topic)

	// Force the subscription onto the wire before returning, so announcements
	// made right after Subscribe are not lost.
	if _, err := pubsub.Receive(ctx); err != nil {
		logger.CtxError(ctx, log_messages.ErrorNotifierSubscribe, err, slog.String("topic", topic))
		_ = pubsub.Close()
		return nil, err
	}

	sub := &redisSubscription{pubsub: pubsub, done: make(chan struct{})}

	go func() {
		defer close(sub.done)
		for msg := range pubsub.Channel() {
			var sig signal
			if err := json.Unmarshal([]byte(msg.Payload), &sig); err != nil {
				logger.CtxWarn(ctx, log_messages.NotifierSignalReceived,
					slog.String("topic", topic),
					slog.String("payload", msg.Payload),
				)
				continue
			}
			if sig.Origin == n.origin {
				logger.CtxDebug(ctx, log_messages.NotifierSignalOwn, slog.String("topic", topic))
				continue
			}

			logger.CtxDebug(ctx, log_messages.NotifierSignalReceived, slog.String("topic", topic))
			handler(ctx)

			if err := n.client.Del(ctx, topic).Err(); err != nil {
				logger.CtxError(ctx, log_messages.ErrorNotifierKeyClearing, err, slog.String("topic", topic))
			} else {
				logger.CtxDebug(ctx, log_messages.NotifierKeyCleared, slog.String("topic", topic))
			}
		}
	}()

	return sub, nil
}
