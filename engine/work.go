package main

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/assess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Worker struct {
	rds             *redis.Redis
	pusher          *pusher.Pusher[AIAnswer]
	onceWorkingTime int
	jobExpire       time.Duration
	rng             *rand.Rand
}

func NewWorker(rds *redis.Redis, p *pusher.Pusher[AIAnswer], onceWorkingTime int, jobExpire time.Duration) *Worker {
	return &Worker{
		rds:             rds,
		pusher:          p,
		onceWorkingTime: onceWorkingTime,
		jobExpire:       jobExpire,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Drain answers jobs from the partition until it is empty, then gives up
// ownership.
func (w *Worker) Drain(partition message.RedisPartition) (err error) {
	logx.Infof("start working at partition %d", partition)

	defer func() {
		if _, delErr := w.rds.Del(partition.OwnerKey()); delErr != nil && err == nil {
			err = delErr
		}
	}()

	for {
		if err = w.rds.Expire(partition.OwnerKey(), w.onceWorkingTime); err != nil {
			return err
		}

		m, err := w.rds.Rpop(partition.ListKey())
		if err == redis.Nil || (err == nil && m == "") {
			return nil
		}
		if err != nil {
			return err
		}

		job, err := message.NewAIJob(m)
		if err != nil {
			logx.Errorf("drop malformed job: %v", err)
			continue
		}
		if job.TimeStamp.Expired(time.Now(), w.jobExpire) {
			logx.Infof("drop expired job %s", job.ResultKey())
			continue
		}

		fresh, err := w.Fresh(job)
		if err != nil {
			w.rollBack(partition, m)
			return err
		}
		if !fresh {
			continue
		}

		w.pusher.AddMessages(Answer(job, w.rng))
	}
}

// Fresh reports whether the game is still waiting on the job's turn.
func (w *Worker) Fresh(job message.AIJob) (bool, error) {
	turn, err := w.rds.Get(message.TurnKey(job.GameUid))
	if err != nil {
		return false, err
	}
	if turn == "" {
		return false, nil
	}

	n, _ := strconv.Atoi(turn)
	return n == job.TurnNumber, nil
}

// Answer runs the selector for the job's player.
func Answer(job message.AIJob, rng *rand.Rand) AIAnswer {
	move, ok := assess.SelectPlayerMove(job.Board, job.Player, rng)
	return AIAnswer{
		Key:    job.ResultKey(),
		Result: message.AIResult{Placement: move, Ok: ok},
	}
}

func (w *Worker) rollBack(partition message.RedisPartition, m string) {
	for range 20 {
		if _, err := w.rds.Rpush(partition.ListKey(), m); err == nil {
			return
		}
		time.Sleep(time.Second / 2)
	}
	logx.Errorf("lost job on partition %d", partition)
}
