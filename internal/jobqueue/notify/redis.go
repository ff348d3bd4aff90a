package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/nixpig/jobqueue/internal/jobqueue"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisPrefix is prepended to the submitter to form the channel a
	// Notification is published on.
	DefaultRedisPrefix = "jobqueue:notify:"

	defaultRedisBuffer  = 64
	defaultRedisTimeout = 2 * time.Second
)

// RedisOptions configure a Redis notifier. Zero values select defaults.
type RedisOptions struct {
	Prefix  string
	Buffer  int
	Timeout time.Duration
}

// Redis is a jobqueue.Notifier that publishes Notifications as JSON on a
// per-submitter Redis channel. Publishing happens on a background goroutine:
// Deliver only hands the Notification over and drops it if the buffer is full.
// A Notification published with no subscribers is lost.
type Redis struct {
	client  redis.UniversalClient
	prefix  string
	timeout time.Duration
	logger  *slog.Logger

	pending chan jobqueue.Notification
	done    chan struct{}
	closed  bool
	mu      sync.RWMutex
}

// NewRedis creates a Redis notifier and starts its publisher. Call Close to
// stop it.
func NewRedis(
	client redis.UniversalClient,
	opts RedisOptions,
	logger *slog.Logger,
) *Redis {
	if opts.Prefix == "" {
		opts.Prefix = DefaultRedisPrefix
	}

	if opts.Buffer < 1 {
		opts.Buffer = defaultRedisBuffer
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultRedisTimeout
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Redis{
		client:  client,
		prefix:  opts.Prefix,
		timeout: opts.Timeout,
		logger:  logger,
		pending: make(chan jobqueue.Notification, opts.Buffer),
		done:    make(chan struct{}),
	}

	go r.publish()

	return r
}

// Channel returns the channel Notifications for submitter are published on.
func (r *Redis) Channel(submitter string) string {
	return r.prefix + submitter
}

// Subscribe subscribes to the Notifications published for submitter.
func (r *Redis) Subscribe(ctx context.Context, submitter string) *redis.PubSub {
	return r.client.Subscribe(ctx, r.Channel(submitter))
}

// Deliver implements jobqueue.Notifier.
func (r *Redis) Deliver(n jobqueue.Notification) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	select {
	case r.pending <- n:
	default:
		r.logger.Warn(
			"drop notification, publish buffer full",
			"job_id", n.JobID,
			"submitter", n.Submitter,
		)
	}
}

// Close stops accepting Notifications and waits for those already handed
// over to be published.
func (r *Redis) Close() error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.pending)
	}
	r.mu.Unlock()

	<-r.done

	return nil
}

func (r *Redis) publish() {
	defer close(r.done)

	for n := range r.pending {
		payload, err := json.Marshal(n)
		if err != nil {
			r.logger.Error("marshal notification", "job_id", n.JobID, "err", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		receivers, err := r.client.Publish(ctx, r.Channel(n.Submitter), payload).Result()
		cancel()

		if err != nil {
			r.logger.Warn("publish notification", "job_id", n.JobID, "err", err)
			continue
		}

		if receivers == 0 {
			r.logger.Debug(
				"no subscribers for notification",
				"job_id", n.JobID,
				"submitter", n.Submitter,
			)
		}
	}
}

// DecodeMessage decodes a Notification received on a Redis channel.
func DecodeMessage(msg *redis.Message) (jobqueue.Notification, error) {
	var n jobqueue.Notification
	err := json.Unmarshal([]byte(msg.Payload), &n)

	return n, err
}
