package locker

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

var (
	// ErrLockTimeout returned when lock cannot be acquired before timeout
	ErrLockTimeout = errors.New("locker: timeout waiting lock")

	unlockScript = redis.NewScript(1, `if redis.call("GET", KEYS[1]) == ARGV[1] then return redis.call("DEL", KEYS[1]) else return 0 end`)
)

// Locker abstraction, lock concurrent process across runtime
type Locker interface {
	Lock(ctx context.Context, key string, timeout time.Duration) (unlockFunc func(), err error)
}

type (
	// RedisLocker lock using redis SET NX PX, released only by the owner token
	RedisLocker struct {
		pool         *redis.Pool
		prefix       string
		ttl          time.Duration
		pollInterval time.Duration
	}

	// NoopLocker empty locker
	NoopLocker struct{}
)

// OptionFunc locker option
type OptionFunc func(*RedisLocker)

// WithPrefix sets the prefix for keys
func WithPrefix(prefix string) OptionFunc {
	return func(r *RedisLocker) {
		r.prefix = prefix
	}
}

// WithTTL sets the expiry of lock key, protect from crashed owner
func WithTTL(ttl time.Duration) OptionFunc {
	return func(r *RedisLocker) {
		r.ttl = ttl
	}
}

// NewRedisLocker constructor
func NewRedisLocker(pool *redis.Pool, opts ...OptionFunc) *RedisLocker {
	r := &RedisLocker{pool: pool, prefix: "LOCKFOR", ttl: 30 * time.Second, pollInterval: 50 * time.Millisecond}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lock block until lock acquired, timeout reached or context canceled
func (r *RedisLocker) Lock(ctx context.Context, key string, timeout time.Duration) (unlockFunc func(), err error) {
	if timeout <= 0 {
		return func() {}, errors.New("timeout must be positive")
	}
	if key == "" {
		return func() {}, errors.New("key cannot empty")
	}

	lockKey := fmt.Sprintf("%s:%s", r.prefix, key)
	token, err := newToken()
	if err != nil {
		return func() {}, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()
	for {
		acquired, err := r.tryLock(ctx, lockKey, token)
		if err != nil {
			return func() {}, err
		}
		if acquired {
			return func() { r.unlock(lockKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return func() {}, ErrLockTimeout
			}
			return func() {}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *RedisLocker) tryLock(ctx context.Context, lockKey, token string) (bool, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	_, err = redis.String(conn.Do("SET", lockKey, token, "NX", "PX", r.ttl.Milliseconds()))
	if errors.Is(err, redis.ErrNil) {
		return false, nil
	}
	return err == nil, err
}

func (r *RedisLocker) unlock(lockKey, token string) {
	conn := r.pool.Get()
	defer conn.Close()
	unlockScript.Do(conn, lockKey, token)
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Lock method
func (NoopLocker) Lock(ctx context.Context, key string, timeout time.Duration) (unlockFunc func(), err error) {
	return func() {}, nil
}
