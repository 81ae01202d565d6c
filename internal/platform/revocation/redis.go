// Package revocation keeps a denylist of token identifiers in Redis. Entries
// expire together with the token they block.
package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type RedisDenylist struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisDenylist connects and pings Redis with a short timeout.
func NewRedisDenylist(ctx context.Context, opts Options) (*RedisDenylist, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return newRedisDenylist(rdb, opts.Prefix), nil
}

func newRedisDenylist(rdb *redis.Client, prefix string) *RedisDenylist {
	if prefix == "" {
		prefix = "revoked"
	}
	return &RedisDenylist{rdb: rdb, prefix: prefix}
}

func (d *RedisDenylist) key(tokenID string) string {
	return d.prefix + ":" + tokenID
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.rdb.Set(ctx, d.key(tokenID), 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *RedisDenylist) Close() error {
	return d.rdb.Close()
}
