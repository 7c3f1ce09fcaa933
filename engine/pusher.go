package main

import (
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const resultExpireSeconds = 120

// AIAnswer is a chosen move waiting to be written back.
type AIAnswer struct {
	Key    message.AIResultKey
	Result message.AIResult
}

var Pusher = pusher.NewPusher(pusher.WithPushInterval[AIAnswer](time.Second/10), pusher.WithPushLogic(func(answers ...AIAnswer) error {
	return PushAnswers(RedisClient, answers...)
}))

func PushAnswers(rds *redis.Redis, answers ...AIAnswer) error {
	for _, a := range answers {
		if err := rds.Setex(a.Key.String(), a.Result.String(), resultExpireSeconds); err != nil {
			return err
		}
	}
	return nil
}
