package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/golangid/attendo/pkg/logger"
)

// RedisInstance read and write pool
type RedisInstance struct {
	read, write *redis.Pool
}

// ReadPool method
func (r *RedisInstance) ReadPool() *redis.Pool {
	return r.read
}

// WritePool method
func (r *RedisInstance) WritePool() *redis.Pool {
	return r.write
}

// Health ping write pool
func (r *RedisInstance) Health(ctx context.Context) error {
	conn, err := r.write.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}

// Disconnect close all pool
func (r *RedisInstance) Disconnect(ctx context.Context) error {
	defer logger.LogWithDefer("\x1b[33;5mredis\x1b[0m: disconnect...")()

	if err := r.write.Close(); err != nil {
		return err
	}
	if r.read != r.write {
		return r.read.Close()
	}
	return nil
}

// InitRedis connection from url dsn, ex: redis://:password@localhost:6379/0.
// Empty read dsn share the write pool
func InitRedis(ctx context.Context, writeDSN, readDSN string) (*RedisInstance, error) {
	defer logger.LogWithDefer("Load Redis connection...")()

	writePool, err := newPool(ctx, writeDSN)
	if err != nil {
		return nil, fmt.Errorf("redis write: %w", err)
	}
	if readDSN == "" {
		return &RedisInstance{read: writePool, write: writePool}, nil
	}

	readPool, err := newPool(ctx, readDSN)
	if err != nil {
		writePool.Close()
		return nil, fmt.Errorf("redis read: %w", err)
	}
	return &RedisInstance{read: readPool, write: writePool}, nil
}

func newPool(ctx context.Context, dsn string) (*redis.Pool, error) {
	pool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 4 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(dsn)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	conn, err := pool.GetContext(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer conn.Close()
	if _, err := conn.Do("PING"); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
