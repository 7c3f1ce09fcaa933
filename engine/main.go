package main

import (
	"time"

	"github.com/HuXin0817/connect-corners/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
)

func main() {
	initConfig()
	pprof.Start(engineConf.Pprof)

	Pusher.Start()
	proc.AddShutdownListener(Pusher.Stop)

	worker := NewWorker(RedisClient, Pusher, engineConf.OnceWorkingTime, engineConf.JobExpire)
	for {
		partition, err := worker.ClaimPartition()
		if err != nil {
			logx.Must(err)
		}

		if err = worker.Drain(partition); err != nil {
			logx.Error(err)
		}

		time.Sleep(time.Second)
	}
}
