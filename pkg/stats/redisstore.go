package stats

import (
	"context"
	"fmt"

	"github.com/HuXin0817/connect-corners/pkg/models/model"
	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// RedisStore keeps one JSON document per player. Record holds a redis lock
// on the player so concurrent games do not lose updates.
type RedisStore struct {
	rds *redis.Redis
}

func NewRedisStore(rds *redis.Redis) *RedisStore {
	return &RedisStore{rds: rds}
}

func statsKey(name string) string {
	return fmt.Sprintf("connect-corners:stats:%s", name)
}

func (r *RedisStore) Get(ctx context.Context, name string) (PlayerStats, error) {
	key, err := normalize(name)
	if err != nil {
		return PlayerStats{}, err
	}
	return r.get(ctx, key)
}

func (r *RedisStore) get(ctx context.Context, key string) (s PlayerStats, err error) {
	value, err := r.rds.GetCtx(ctx, statsKey(key))
	if err != nil {
		return PlayerStats{}, err
	}
	if value == "" {
		return PlayerStats{}, nil
	}

	err = sonic.UnmarshalString(value, &s)
	return
}

func (r *RedisStore) Record(ctx context.Context, name string, result GameResult) (next PlayerStats, unlocked []Achievement, err error) {
	key, err := normalize(name)
	if err != nil {
		return PlayerStats{}, nil, err
	}

	lock := model.NewLock(r.rds, statsKey(key)+":lock")
	err = lock.Do(func() error {
		current, err := r.get(ctx, key)
		if err != nil {
			return err
		}

		next, unlocked = Apply(current, result)
		value, err := sonic.MarshalString(next)
		if err != nil {
			return err
		}
		return r.rds.SetCtx(ctx, statsKey(key), value)
	})
	return
}
