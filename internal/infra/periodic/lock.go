package periodic

import (
	"context"
	"time"

	"flavor-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const lockPrefix = "reservation:periodic:"

// releaseScript deletes the key only while it still holds our token.
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// Locker grants a named lease across processes.
type Locker interface {
	// TryLock returns a release func when the lock was acquired, nil when another holder has it.
	TryLock(ctx context.Context, name string, ttl time.Duration) (func(context.Context) error, error)
}

type redisLockClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

type RedisLocker struct {
	rdb redisLockClient
}

func NewRedisLocker(rdb redisLockClient) *RedisLocker {
	return &RedisLocker{rdb: rdb}
}

func (l *RedisLocker) TryLock(ctx context.Context, name string, ttl time.Duration) (func(context.Context) error, error) {
	key := lockPrefix + name
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, errs.Wrapf(err, "acquiring lock %s", key)
	}
	if !ok {
		return nil, nil
	}

	return func(ctx context.Context) error {
		if err := l.rdb.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil && !errs.Is(err, redis.Nil) {
			return errs.Wrapf(err, "releasing lock %s", key)
		}
		return nil
	}, nil
}

// LocalLocker only guards the current process. It backs single-instance setups and tests.
type LocalLocker struct{}

func (LocalLocker) TryLock(context.Context, string, time.Duration) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}
