// Package auth resolves bearer credentials to an identity. Credential
// issuance and validation happen outside this service; by the time a token
// reaches us it is an opaque session key written by the login service.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnauthenticated reports a missing, expired or unknown credential.
var ErrUnauthenticated = errors.New("unauthenticated")

// Resolver turns a bearer token into the email of the account it belongs to.
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

const sessionPrefix = "session:"

// RedisResolver reads sessions from the shared redis the login service
// writes them to.
type RedisResolver struct {
	rdb *redis.Client
}

// NewRedisResolver connects to redis and verifies the connection.
func NewRedisResolver(addr, password string) (*RedisResolver, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &RedisResolver{rdb: rdb}, nil
}

// Resolve looks the token up in the session store.
func (r *RedisResolver) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	email, err := r.rdb.Get(ctx, sessionPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("session lookup: %w", err)
	}
	return email, nil
}
