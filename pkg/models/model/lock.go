package model

import (
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

var ErrLockTimeout = errors.New("timed out waiting for redis lock")

const (
	lockRetryInterval = time.Second / 5
	lockExpireSeconds = 5
)

type RedisLock struct {
	*redis.RedisLock
	Timeout time.Duration
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
		Timeout:   10 * time.Second,
	}
	l.SetExpire(lockExpireSeconds)
	return l
}

// Do runs f while holding the lock and releases it even when f fails.
func (l *RedisLock) Do(f func() error) (err error) {
	if err = l.Lock(); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock() error {
	deadline := time.Now().Add(l.Timeout)
	for {
		acquire, err := l.Acquire()
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		if time.Now().After(deadline) {
			return ErrLockTimeout
		}
		time.Sleep(lockRetryInterval)
	}
}

// UnLock releases the lock. A lock that already expired counts as released.
func (l *RedisLock) UnLock() error {
	_, err := l.Release()
	return err
}
