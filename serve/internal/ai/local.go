package ai

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/assess"
	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
)

// LocalMover runs the greedy selector in process.
type LocalMover struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocalMover(rng *rand.Rand) *LocalMover {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &LocalMover{rng: rng}
}

func (l *LocalMover) SelectMove(_ context.Context, _ message.GameUid, g *chess.Game) (chess.Placement, bool) {
	p := g.CurrentPlayer()
	if p == nil {
		return chess.Placement{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return assess.SelectPlayerMove(g.Board, *p, l.rng)
}
