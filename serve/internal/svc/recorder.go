package svc

import (
	"context"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/models/message/moverecord"
	"github.com/HuXin0817/connect-corners/pkg/models/pusher"
)

const recordTimeout = 10 * time.Second

// MongoRecorder writes start and end records directly and batches the moves.
// It also serves replays of what it wrote.
type MongoRecorder struct {
	moverecord.Finder
	pusher *pusher.Pusher[*moverecord.MoveRecode]
}

func NewMongoRecorder(url, db string) *MongoRecorder {
	moves := moverecord.NewMoveRecodeModel(url, db)
	r := &MongoRecorder{
		Finder: moverecord.Finder{
			Starts: moverecord.NewGameStartRecodeModel(url, db),
			Moves:  moves,
			Ends:   moverecord.NewGameEndRecodeModel(url, db),
		},
		pusher: pusher.NewPusher(pusher.WithPushLogic(func(recodes ...*moverecord.MoveRecode) error {
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()

			return moves.InsertMany(ctx, recodes)
		})),
	}
	r.pusher.Start()
	return r
}

func (r *MongoRecorder) RecordStart(ctx context.Context, uid message.GameUid, g *chess.Game) error {
	return r.Starts.Insert(ctx, moverecord.NewGameStartRecode(uid, g))
}

func (r *MongoRecorder) RecordMove(_ context.Context, uid message.GameUid, g *chess.Game, record chess.MoveRecord) error {
	r.pusher.AddMessages(moverecord.NewMoveRecode(uid, g, record))
	return nil
}

func (r *MongoRecorder) RecordEnd(ctx context.Context, uid message.GameUid, g *chess.Game) error {
	if err := r.pusher.PushAll(); err != nil {
		return err
	}
	return r.Ends.Insert(ctx, moverecord.NewGameEndRecode(uid, g))
}

// FindReplay flushes pending moves first so a replay never lags the game.
func (r *MongoRecorder) FindReplay(ctx context.Context, uid message.GameUid) (*moverecord.Replay, error) {
	if err := r.pusher.PushAll(); err != nil {
		return nil, err
	}
	return r.Finder.FindReplay(ctx, uid)
}

func (r *MongoRecorder) Close() {
	r.pusher.Stop()
}
