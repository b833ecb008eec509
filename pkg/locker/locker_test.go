package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLocker(t *testing.T) {
	var l Locker = NoopLocker{}
	unlock, err := l.Lock(context.Background(), "b@x.com", time.Second)
	require.NoError(t, err)
	assert.NotPanics(t, unlock)
}

func TestRedisLocker_Lock(t *testing.T) {
	dialErr := errors.New("dial tcp: connection refused")
	pool := &redis.Pool{
		Dial: func() (redis.Conn, error) { return nil, dialErr },
	}
	l := NewRedisLocker(pool, WithPrefix("attendo:join"), WithTTL(time.Second))
	assert.Equal(t, "attendo:join", l.prefix)
	assert.Equal(t, time.Second, l.ttl)

	t.Run("Testcase #1: non positive timeout", func(t *testing.T) {
		_, err := l.Lock(context.Background(), "b@x.com", 0)
		assert.EqualError(t, err, "timeout must be positive")
	})

	t.Run("Testcase #2: empty key", func(t *testing.T) {
		_, err := l.Lock(context.Background(), "", time.Second)
		assert.EqualError(t, err, "key cannot empty")
	})

	t.Run("Testcase #3: redis unreachable", func(t *testing.T) {
		unlock, err := l.Lock(context.Background(), "b@x.com", time.Second)
		assert.ErrorIs(t, err, dialErr)
		assert.NotPanics(t, unlock)
	})
}
