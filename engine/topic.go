package main

import (
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// ClaimPartition blocks until it owns a partition that has jobs waiting.
func (w *Worker) ClaimPartition() (message.RedisPartition, error) {
	for {
		for _, t := range message.RedisPartitions {
			length, err := w.rds.Llen(t.ListKey())
			if err != nil {
				return -1, err
			}
			if length == 0 {
				continue
			}

			claimed, err := w.rds.SetnxEx(t.OwnerKey(), string(message.NewTimeStamp(time.Now())), w.onceWorkingTime)
			if err != nil {
				return -1, err
			}
			if claimed {
				logx.Infof("claimed partition %d with %d jobs", t, length)
				return t, nil
			}
		}

		time.Sleep(time.Second)
	}
}
