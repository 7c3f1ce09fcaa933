package main

import (
	"flag"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/env"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	service.ServiceConf
	Redis           redis.RedisConf
	OnceWorkingTime int           `json:",default=180"`
	JobExpire       time.Duration `json:",default=30s"`
	Pprof           string        `json:",optional"`
}

var (
	configFile  = flag.String("f", "etc/engine.yaml", "the config file")
	engineConf  Config
	RedisClient *redis.Redis
)

func initConfig() {
	flag.Parse()
	conf.MustLoad(*configFile, &engineConf)
	engineConf.MustSetUp()
	engineConf.Redis.Pass = env.Or(engineConf.Redis.Pass, env.RedisPassWord)

	RedisClient = redis.MustNewRedis(engineConf.Redis)
}
