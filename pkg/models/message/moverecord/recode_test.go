package moverecord

import (
	"testing"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T) *chess.Game {
	t.Helper()
	g, err := chess.NewGame(
		chess.Seat{Color: chess.Blue, Name: "ann", IsHuman: true},
		chess.Seat{Color: chess.Yellow},
		chess.Seat{Color: chess.Red},
		chess.Seat{Color: chess.Green},
	)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return g
}

func TestGameStartRecode(t *testing.T) {
	recode := NewGameStartRecode("uid", newGame(t))
	assert.Equal(t, chess.BoardSize, recode.BoardSize)
	require.Len(t, recode.Seats, chess.SeatCount)
	assert.Equal(t, SeatRecode{PlayerID: "BLUE", Name: "ann", Color: "BLUE", IsHuman: true}, recode.Seats[0])
	assert.False(t, recode.Seats[1].IsHuman)
}

func TestMoveRecodeKeepsOrientedShape(t *testing.T) {
	g := newGame(t)
	record, err := g.PlaceOriented("p3", 1, false, chess.Coordinate{})
	require.NoError(t, err)

	recode := NewMoveRecode("uid", g, record)
	assert.Equal(t, "BLUE", recode.Player)
	assert.Equal(t, "p3", recode.PieceID)
	assert.Equal(t, chess.ParseShape("##", "#.").Transform(1, false).String(), recode.Shape)
	assert.Equal(t, 3, recode.Score)
	assert.False(t, recode.Passed)
}

func TestMoveRecodeForPass(t *testing.T) {
	g := newGame(t)
	require.NoError(t, g.Pass())

	recode := NewMoveRecode("uid", g, g.History[len(g.History)-1])
	assert.True(t, recode.Passed)
	assert.Empty(t, recode.Shape)
	assert.Empty(t, recode.PieceID)
}

func TestGameEndRecode(t *testing.T) {
	g := newGame(t)
	_, err := g.Place("p0", chess.ParseShape("#"), chess.Coordinate{})
	require.NoError(t, err)
	for g.Status == chess.Playing {
		require.NoError(t, g.Pass())
	}

	recode := NewGameEndRecode("uid", g)
	assert.Equal(t, "BLUE", recode.Winner)
	require.Len(t, recode.Standings, chess.SeatCount)
	assert.Equal(t, 1, recode.Standings[0].Score)
}
