package moverecord

import (
	"context"
	"errors"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
)

// Replay is everything recorded about one game. End is nil while the game
// is still running.
type Replay struct {
	Start *GameStartRecode `json:"start"`
	Moves []*MoveRecode    `json:"moves"`
	End   *GameEndRecode   `json:"end,omitempty"`
}

// Finder is the read side of the three record models.
type Finder struct {
	Starts GameStartRecodeModel
	Moves  MoveRecodeModel
	Ends   GameEndRecodeModel
}

// FindReplay returns ErrNotFound when the game never started.
func (f Finder) FindReplay(ctx context.Context, uid message.GameUid) (*Replay, error) {
	start, err := f.Starts.FindByGameUid(ctx, uid)
	if err != nil {
		return nil, err
	}

	moves, err := f.Moves.FindByGameUid(ctx, uid)
	if err != nil {
		return nil, err
	}

	end, err := f.Ends.FindByGameUid(ctx, uid)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return &Replay{Start: start, Moves: moves, End: end}, nil
}
