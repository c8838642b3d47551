package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"social-manager/internal/config"
	"social-manager/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. It returns nil, nil when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// NewFromRedis wraps an existing go-redis client.
func NewFromRedis(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is a best-effort distributed try-lock built on SET NX PX.
type Locker struct {
	client *Client
	prefix string
	ttl    time.Duration
}

func NewLocker(client *Client, prefix string, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Locker{client: client, prefix: prefix, ttl: ttl}
}

// TryLock claims key for the configured TTL. The returned release is safe to call more than once.
func (l *Locker) TryLock(ctx context.Context, key string) (func(), bool, error) {
	if l.client == nil || l.client.client == nil {
		return nil, false, fmt.Errorf("Redis client not initialized")
	}

	token, err := newToken()
	if err != nil {
		return nil, false, err
	}

	fullKey := l.prefix + key
	acquired, err := l.client.client.SetNX(ctx, fullKey, token, l.ttl).Result()
	if err != nil {
		l.client.logger.Error(ctx, "failed to acquire redis lock", err)
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", fullKey, err)
	}
	if !acquired {
		return nil, false, nil
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, l.client.client, []string{fullKey}, token).Err(); err != nil {
			l.client.logger.Error(releaseCtx, "failed to release redis lock", err)
		}
	}, true, nil
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate lock token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
