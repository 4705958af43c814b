package events

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/columns/pkg/errors"
)

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "columns:layout"

// RedisConfig configures a [RedisPublisher].
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
	// DialTimeout bounds connection setup. Defaults to 5s.
	DialTimeout time.Duration
}

// RedisPublisher publishes events as JSON on a Redis channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher connects and pings the server.
func NewRedisPublisher(ctx context.Context, cfg RedisConfig) (*RedisPublisher, error) {
	if cfg.Addr == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "redis address is required")
	}
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisPublisher{client: client, channel: cfg.Channel}, nil
}

// Channel returns the channel events are published on.
func (p *RedisPublisher) Channel() string { return p.channel }

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode event")
	}
	err = retryWithBackoff(ctx, func() error {
		err := p.client.Publish(ctx, p.channel, data).Err()
		if isNetworkError(err) {
			return Retryable(err)
		}
		return err
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "publish %s", ev.Type)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

func isNetworkError(err error) bool {
	var netErr net.Error
	return stderrors.As(err, &netErr) || stderrors.Is(err, redis.ErrClosed)
}
