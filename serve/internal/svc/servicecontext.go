package svc

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/env"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/models/message/moverecord"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/HuXin0817/connect-corners/serve/internal/ai"
	"github.com/HuXin0817/connect-corners/serve/internal/config"
	"github.com/HuXin0817/connect-corners/serve/internal/room"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// Archive looks up recorded games.
type Archive interface {
	FindReplay(ctx context.Context, uid message.GameUid) (*moverecord.Replay, error)
}

type ServiceContext struct {
	Config      config.Config
	RedisClient *redis.Redis
	Mover       room.Mover
	Recorder    room.Recorder
	Archive     Archive
	Stats       stats.Store
	Tables      *Tables
	closers     []func()
}

// NewServiceContext wires the collaborators the config asks for. Without a
// redis host stats stay in memory and computers play in process; without a
// mongo url games are not recorded.
func NewServiceContext(c config.Config) *ServiceContext {
	c.Redis.Pass = env.Or(c.Redis.Pass, env.RedisPassWord)
	c.MongoConf.PassWord = env.Or(c.MongoConf.PassWord, env.MongoPassWord)

	local := ai.NewLocalMover(rand.New(rand.NewSource(time.Now().UnixNano())))
	svcCtx := &ServiceContext{
		Config: c,
		Mover:  local,
		Stats:  stats.NewMemoryStore(),
		Tables: NewTables(c.FinishedRoomTTL),
	}

	if c.Redis.Host != "" {
		svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
		svcCtx.Stats = stats.NewRedisStore(svcCtx.RedisClient)

		if c.AI.Remote {
			remote := ai.NewRemoteMover(svcCtx.RedisClient, c.AI.Timeout, local)
			svcCtx.Mover = remote
			svcCtx.closers = append(svcCtx.closers, remote.Close)
		}
	}

	if c.MongoConf.Url != "" {
		url := fmt.Sprintf(c.MongoConf.Url, c.MongoConf.PassWord)
		recorder := NewMongoRecorder(url, c.MongoConf.DataBaseName)
		svcCtx.Recorder = recorder
		svcCtx.Archive = recorder
		svcCtx.closers = append(svcCtx.closers, recorder.Close)
	}

	logx.Infof("stats store %T, mover %T, recording %t", svcCtx.Stats, svcCtx.Mover, svcCtx.Recorder != nil)
	return svcCtx
}

// NewTestServiceContext builds a context with in-memory collaborators only.
func NewTestServiceContext(c config.Config, mover room.Mover) *ServiceContext {
	return &ServiceContext{
		Config: c,
		Mover:  mover,
		Stats:  stats.NewMemoryStore(),
		Tables: NewTables(c.FinishedRoomTTL),
	}
}

func (s *ServiceContext) Close() {
	for _, c := range s.closers {
		c()
	}
}
