package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf

	ListenOn string          `json:",default=0.0.0.0:8000"`
	Redis    redis.RedisConf `json:",optional"`

	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=connect_corners"`
		PassWord     string `json:",optional"`
	} `json:",optional"`

	AI struct {
		Remote  bool          `json:",default=false"`
		Timeout time.Duration `json:",default=3s"`
	}

	FinishedRoomTTL time.Duration `json:",default=10m"`

	Pprof string `json:",optional"`
}
