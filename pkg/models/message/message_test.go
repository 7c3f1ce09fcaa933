package message

import (
	"testing"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveMessageCarriesOrientationGrid(t *testing.T) {
	data, err := Encode(Move, MovePayload{
		PlayerID: "BLUE",
		PieceID:  "p3",
		Shape:    chess.ParseShape("##", "#."),
		Position: chess.Coordinate{X: 0, Y: 0},
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"MOVE"`)
	assert.Contains(t, string(data), `"orientationGrid"`)

	m, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Move, m.Type)

	var payload MovePayload
	require.NoError(t, m.Unmarshal(&payload))
	assert.Equal(t, chess.PieceID("p3"), payload.PieceID)
	assert.True(t, payload.Shape.Equal(chess.ParseShape("##", "#.")))
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	_, err := Decode([]byte(`{"type":"CHAT","payload":{"text":"hi"}}`))
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Encode("CHAT", nil)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestDecodeRejectsEmptyPayload(t *testing.T) {
	_, err := Decode([]byte(`{"type":"PASS"}`))
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = Decode([]byte(`{"type":"PASS","payload":null}`))
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestUpdateReplacesState(t *testing.T) {
	g, err := chess.NewGame(
		chess.Seat{Color: chess.Blue, IsHuman: true},
		chess.Seat{Color: chess.Yellow},
		chess.Seat{Color: chess.Red},
		chess.Seat{Color: chess.Green},
	)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	_, err = g.Place("p0", chess.ParseShape("#"), chess.Coordinate{})
	require.NoError(t, err)

	data, err := Encode(Update, NewUpdatePayload(g))
	require.NoError(t, err)

	m, err := Decode(data)
	require.NoError(t, err)
	var update UpdatePayload
	require.NoError(t, m.Unmarshal(&update))

	local := update.Game()
	assert.Equal(t, g.Board, local.Board)
	assert.Equal(t, g.CurrentPlayerIndex, local.CurrentPlayerIndex)
	assert.Equal(t, chess.Playing, local.Status)
	assert.Equal(t, chess.Score(g.Players[0]), chess.Score(local.Players[0]))
	assert.Len(t, local.Players[0].Pieces, 21)
	require.NotNil(t, update.LastMove)
	assert.Equal(t, chess.PieceID("p0"), update.LastMove.PieceID)
}

func TestGameOverCarriesStandings(t *testing.T) {
	g, err := chess.NewGame(
		chess.Seat{Color: chess.Blue},
		chess.Seat{Color: chess.Yellow},
		chess.Seat{Color: chess.Red},
		chess.Seat{Color: chess.Green},
	)
	require.NoError(t, err)
	payload := NewGameOverPayload(g)
	assert.Len(t, payload.Players, chess.SeatCount)
	assert.Len(t, payload.Standings, chess.SeatCount)
}

func TestPeerID(t *testing.T) {
	id := NewPeerID()
	assert.Len(t, string(id), 6)
	assert.Regexp(t, `^[0-9A-F]{6}$`, string(id))
	assert.NotEqual(t, NewGameUid(), NewGameUid())
}

func TestAIJobRoundTrip(t *testing.T) {
	p := chess.NewPlayer("RED", chess.Red, false, chess.Coordinate{X: 19, Y: 19})
	job := AIJob{
		GameUid:    "game",
		TurnNumber: 3,
		Board:      chess.NewBoard(chess.BoardSize),
		Player:     p,
	}

	got, err := NewAIJob(job.String())
	require.NoError(t, err)
	assert.Equal(t, job.GameUid, got.GameUid)
	assert.Equal(t, job.Board, got.Board)
	assert.Equal(t, p.Corner, got.Player.Corner)
	assert.Equal(t, "connect-corners:ai:game:3", got.ResultKey().String())

	result, err := NewAIResult(AIResult{Ok: false}.String())
	require.NoError(t, err)
	assert.False(t, result.Ok)
}

func TestPartitionOfIsStable(t *testing.T) {
	uid := NewGameUid()
	assert.Equal(t, PartitionOf(uid), PartitionOf(uid))
	assert.Contains(t, RedisPartitions, PartitionOf(uid))
}

func TestTimeStampExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ts := NewTimeStamp(now.Add(-10 * time.Second))
	assert.Equal(t, now.Add(-10*time.Second), ts.Time())
	assert.False(t, ts.Expired(now, 30*time.Second))
	assert.True(t, ts.Expired(now, 5*time.Second))
	assert.True(t, TimeStamp("garbage").Expired(now, time.Hour))
}
