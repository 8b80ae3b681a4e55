package ledger

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/logomark/logomark/pkg/errors"
)

// keyPrefix namespaces ledger keys inside a shared Redis instance.
const keyPrefix = "logomark:ledger:"

// Redis is a Redis-backed ledger for multi-instance deployments. Atomicity
// comes from SETNX: exactly one concurrent inserter wins per hash.
type Redis struct {
	client *redis.Client
}

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "redis ledger at %s", cfg.Addr)
	}
	return &Redis{client: client}, nil
}

// Contains checks key existence.
func (r *Redis) Contains(ctx context.Context, hash string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+hash).Result()
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "exists check")
	}
	return n > 0, nil
}

// Insert stores the entry under its hash with SETNX semantics.
func (r *Redis) Insert(ctx context.Context, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, keyPrefix+e.Hash, data, 0).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerUnavailable, err, "insert")
	}
	if !ok {
		return ErrDuplicate
	}
	return nil
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Ensure Redis implements Ledger.
var _ Ledger = (*Redis)(nil)
