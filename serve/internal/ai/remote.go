package ai

import (
	"context"
	"strconv"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/models/model"
	"github.com/HuXin0817/connect-corners/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	turnKeyExpireSeconds = 120
	pollInterval         = 100 * time.Millisecond
)

// RemoteMover hands the choice to engine workers through redis and falls
// back to another Mover when no valid answer arrives in time.
type RemoteMover struct {
	rds             *redis.Redis
	partitionPusher map[message.RedisPartition]*pusher.Pusher[string]
	timeout         time.Duration
	fallback        *LocalMover
}

func NewRemoteMover(rds *redis.Redis, timeout time.Duration, fallback *LocalMover) *RemoteMover {
	return &RemoteMover{
		rds:             rds,
		partitionPusher: NewPartitionPushers(rds),
		timeout:         timeout,
		fallback:        fallback,
	}
}

// NewPartitionPushers starts one pusher per partition list. Each batch is
// pushed under the partition lock and refreshes the list expiry.
func NewPartitionPushers(rds *redis.Redis) map[message.RedisPartition]*pusher.Pusher[string] {
	pushers := make(map[message.RedisPartition]*pusher.Pusher[string], len(message.RedisPartitions))
	for _, partition := range message.RedisPartitions {
		lock := model.NewLock(rds, partition.LockName())

		pushers[partition] = pusher.NewPusher(
			pusher.WithPushInterval[string](pollInterval),
			pusher.WithPushLogic(func(pushMessages ...string) error {
				return lock.Do(func() (err error) {
					messages := make([]any, 0, len(pushMessages))
					for _, m := range pushMessages {
						messages = append(messages, m)
					}

					if _, err = rds.Lpush(partition.ListKey(), messages...); err != nil {
						return err
					}

					length, err := rds.Llen(partition.ListKey())
					if err != nil {
						return err
					}

					return rds.Expire(partition.ListKey(), turnKeyExpireSeconds*length)
				})
			}),
		)
		pushers[partition].Start()
	}
	return pushers
}

func (m *RemoteMover) SelectMove(ctx context.Context, uid message.GameUid, g *chess.Game) (chess.Placement, bool) {
	move, ok, err := m.ask(ctx, uid, g)
	if err != nil {
		logx.WithContext(ctx).Infof("remote move for %s turn %d: %v, choosing locally", uid, g.TurnNumber, err)
		return m.fallback.SelectMove(ctx, uid, g)
	}
	return move, ok
}

func (m *RemoteMover) ask(ctx context.Context, uid message.GameUid, g *chess.Game) (chess.Placement, bool, error) {
	p := g.CurrentPlayer()
	job := message.AIJob{
		TimeStamp:  message.NewTimeStamp(time.Now()),
		GameUid:    uid,
		TurnNumber: g.TurnNumber,
		Board:      g.Board,
		Player:     *p,
	}

	if err := m.rds.SetexCtx(ctx, message.TurnKey(uid), strconv.Itoa(g.TurnNumber), turnKeyExpireSeconds); err != nil {
		return chess.Placement{}, false, err
	}
	m.partitionPusher[message.PartitionOf(uid)].AddMessages(job.String())

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return chess.Placement{}, false, ctx.Err()
		case <-ticker.C:
			value, err := m.rds.GetCtx(ctx, job.ResultKey().String())
			if err != nil {
				return chess.Placement{}, false, err
			}
			if value == "" {
				continue
			}

			result, err := message.NewAIResult(value)
			if err != nil {
				return chess.Placement{}, false, err
			}
			if err = Validate(g, result); err != nil {
				return chess.Placement{}, false, err
			}
			return result.Placement, result.Ok, nil
		}
	}
}

// Close flushes queued jobs.
func (m *RemoteMover) Close() {
	for _, p := range m.partitionPusher {
		p.Stop()
	}
}
