package room

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/assess"
	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greedyMover struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (m *greedyMover) SelectMove(_ context.Context, _ message.GameUid, g *chess.Game) (chess.Placement, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return assess.SelectPlayerMove(g.Board, *g.CurrentPlayer(), m.rng)
}

type outbox struct {
	mu       sync.Mutex
	all      []message.Message
	personal map[message.PeerID][]message.Message
}

func (o *outbox) Broadcast(data []byte) {
	m, err := message.Decode(data)
	if err != nil {
		panic(err)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.all = append(o.all, m)
}

func (o *outbox) SendTo(id message.PeerID, data []byte) bool {
	m, err := message.Decode(data)
	if err != nil {
		panic(err)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.personal == nil {
		o.personal = make(map[message.PeerID][]message.Message)
	}
	o.personal[id] = append(o.personal[id], m)
	return true
}

func (o *outbox) count(t message.Type) (n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, m := range o.all {
		if m.Type == t {
			n++
		}
	}
	return
}

type countingRecorder struct {
	mu                 sync.Mutex
	starts, moves, end int
}

func (r *countingRecorder) RecordStart(context.Context, message.GameUid, *chess.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts++
	return nil
}

func (r *countingRecorder) RecordMove(context.Context, message.GameUid, *chess.Game, chess.MoveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves++
	return nil
}

func (r *countingRecorder) RecordEnd(context.Context, message.GameUid, *chess.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.end++
	return nil
}

func newRoom(out *outbox, recorder Recorder, store stats.Store) *Room {
	return New("r1", "test", out, Options{
		Mover:    &greedyMover{rng: rand.New(rand.NewSource(1))},
		Recorder: recorder,
		Stats:    store,
		Rand:     rand.New(rand.NewSource(2)),
	})
}

func finished(r *Room) func() bool {
	return func() bool {
		g := r.Snapshot()
		return g != nil && g.Status == chess.Finished
	}
}

func TestJoinAssignsColors(t *testing.T) {
	ctx := context.Background()
	r := newRoom(&outbox{}, nil, stats.NewMemoryStore())

	seat, err := r.Join(ctx, "A", "ann", chess.NoColor)
	require.NoError(t, err)
	assert.Equal(t, 0, seat)
	assert.Equal(t, chess.Blue, r.Seats()[0].Color)

	again, err := r.Join(ctx, "A", "ann", chess.Red)
	require.NoError(t, err)
	assert.Equal(t, 0, again)

	_, err = r.Join(ctx, "B", "bob", chess.Blue)
	assert.ErrorIs(t, err, ErrColorTaken)

	_, err = r.Join(ctx, "B", "bob", chess.LightBlue)
	assert.ErrorIs(t, err, ErrColorLocked)

	seat, err = r.Join(ctx, "B", "bob", chess.Red)
	require.NoError(t, err)
	assert.Equal(t, 1, seat)

	r.Leave(ctx, "A")
	require.Len(t, r.Seats(), 1)
	assert.Equal(t, chess.Red, r.Seats()[0].Color)
}

func TestJoinUnlockedColor(t *testing.T) {
	ctx := context.Background()
	store := stats.NewMemoryStore()
	_, _, err := store.Record(ctx, "ann", stats.GameResult{IsWin: true})
	require.NoError(t, err)

	r := newRoom(&outbox{}, nil, store)
	_, err = r.Join(ctx, "A", "ann", chess.LightBlue)
	assert.NoError(t, err)
}

func TestRoomFull(t *testing.T) {
	ctx := context.Background()
	r := newRoom(&outbox{}, nil, nil)
	for _, peer := range []message.PeerID{"A", "B", "C", "D"} {
		_, err := r.Join(ctx, peer, "", chess.NoColor)
		require.NoError(t, err)
	}
	_, err := r.Join(ctx, "E", "", chess.NoColor)
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestComputersPlayWholeGame(t *testing.T) {
	out := &outbox{}
	recorder := &countingRecorder{}
	r := newRoom(out, recorder, nil)

	require.NoError(t, r.Start(context.Background()))
	assert.ErrorIs(t, r.Start(context.Background()), ErrAlreadyStarted)
	require.Eventually(t, finished(r), 60*time.Second, 10*time.Millisecond)

	g := r.Snapshot()
	assert.Equal(t, 1, out.count(message.StartGame))
	assert.Equal(t, 1, out.count(message.GameOver))
	assert.Greater(t, out.count(message.Update), 1)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, 1, recorder.starts)
	assert.Equal(t, len(g.History), recorder.moves)
	assert.Equal(t, 1, recorder.end)

	for _, p := range g.Players {
		assert.True(t, p.HasPassed)
		assert.Less(t, len(p.Pieces), 22)
	}
}

func TestHumanMoveLetsComputersReply(t *testing.T) {
	ctx := context.Background()
	out := &outbox{}
	r := newRoom(out, nil, nil)

	_, err := r.Join(ctx, "A", "ann", chess.Blue)
	require.NoError(t, err)
	require.NoError(t, r.Start(ctx))

	g := r.Snapshot()
	require.Equal(t, 0, g.CurrentPlayerIndex)
	assert.Equal(t, "A", g.Players[0].ID)

	err = r.Place(ctx, "Z", message.MovePayload{PieceID: "p0", Shape: chess.ParseShape("#")})
	assert.ErrorIs(t, err, ErrNotSeated)

	err = r.Place(ctx, "A", message.MovePayload{PieceID: "p0", Shape: chess.ParseShape("#"), Position: chess.Coordinate{X: 3, Y: 3}})
	assert.ErrorIs(t, err, chess.ErrIllegalPlacement)
	assert.Equal(t, 1, r.Snapshot().TurnNumber)

	err = r.Place(ctx, "A", message.MovePayload{PieceID: "p0", Shape: chess.ParseShape("#")})
	require.NoError(t, err)

	g = r.Snapshot()
	assert.Equal(t, 0, g.CurrentPlayerIndex)
	assert.Equal(t, 5, g.TurnNumber)
	for _, p := range g.Players[1:] {
		assert.Len(t, p.Pieces, 21)
	}
}

func TestPassOnlyForOwnSeat(t *testing.T) {
	ctx := context.Background()
	r := newRoom(&outbox{}, nil, nil)

	_, err := r.Join(ctx, "A", "ann", chess.Blue)
	require.NoError(t, err)
	_, err = r.Join(ctx, "B", "bob", chess.Red)
	require.NoError(t, err)
	require.NoError(t, r.Start(ctx))

	err = r.Pass(ctx, "B", message.PassPayload{PlayerID: "B"})
	assert.ErrorIs(t, err, chess.ErrNotYourTurn)

	err = r.Pass(ctx, "B", message.PassPayload{PlayerID: "A"})
	assert.ErrorIs(t, err, chess.ErrNotYourTurn)

	require.NoError(t, r.Pass(ctx, "A", message.PassPayload{PlayerID: "A"}))
	assert.True(t, r.Snapshot().Players[0].HasPassed)
}

func TestFinishedGameUpdatesStats(t *testing.T) {
	ctx := context.Background()
	store := stats.NewMemoryStore()
	r := newRoom(&outbox{}, nil, store)

	_, err := r.Join(ctx, "A", "ann", chess.Blue)
	require.NoError(t, err)
	require.NoError(t, r.Start(ctx))
	require.NoError(t, r.Pass(ctx, "A", message.PassPayload{}))
	require.Eventually(t, finished(r), 60*time.Second, 10*time.Millisecond)

	s, err := store.Get(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, 1, s.GamesPlayed)
	assert.Equal(t, 0, s.Wins)
	assert.Equal(t, 0, s.MultiplayerGames)
}

func TestLeavingPlayerIsPassed(t *testing.T) {
	ctx := context.Background()
	r := newRoom(&outbox{}, nil, nil)

	_, err := r.Join(ctx, "A", "ann", chess.Blue)
	require.NoError(t, err)
	require.NoError(t, r.Start(ctx))

	r.Leave(ctx, "A")
	require.Eventually(t, finished(r), 60*time.Second, 10*time.Millisecond)
	assert.Len(t, r.Snapshot().Players[0].Pieces, 22)
}

func TestLeavingOutOfTurnIsBroadcastAndRecorded(t *testing.T) {
	ctx := context.Background()
	out := &outbox{}
	recorder := &countingRecorder{}
	r := newRoom(out, recorder, nil)

	_, err := r.Join(ctx, "A", "ann", chess.Blue)
	require.NoError(t, err)
	_, err = r.Join(ctx, "B", "bob", chess.Red)
	require.NoError(t, err)
	require.NoError(t, r.Start(ctx))
	require.Equal(t, 0, r.Snapshot().CurrentPlayerIndex)

	updates := out.count(message.Update)
	recorder.mu.Lock()
	moves := recorder.moves
	recorder.mu.Unlock()

	r.Leave(ctx, "B")

	g := r.Snapshot()
	assert.True(t, g.Players[1].HasPassed)
	assert.Equal(t, 0, g.CurrentPlayerIndex)
	assert.Equal(t, updates+1, out.count(message.Update))

	last := g.History[len(g.History)-1]
	assert.Equal(t, chess.Red, last.Player)
	assert.True(t, last.Passed)

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	assert.Equal(t, moves+1, recorder.moves)
}

func TestOnFinishRunsOnce(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	r := New("r1", "test", &outbox{}, Options{
		Mover: &greedyMover{rng: rand.New(rand.NewSource(1))},
		Rand:  rand.New(rand.NewSource(2)),
		OnFinish: func() {
			mu.Lock()
			defer mu.Unlock()
			calls++
		},
	})

	require.NoError(t, r.Start(context.Background()))
	require.Eventually(t, finished(r), 60*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}
