package assess

import (
	"math/rand"
	"testing"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = chess.Coordinate{X: 0, Y: 0}

func TestLegalMovesMatchesSequential(t *testing.T) {
	b := chess.NewBoard(chess.BoardSize)
	hand := chess.StandardPieces()

	want := chess.AllLegalMoves(b, hand, chess.Blue, true, origin)
	got := LegalMoves(b, hand, chess.Blue, true, origin)
	assert.Equal(t, want, got)
	assert.NotEmpty(t, got)

	b = chess.ApplyPlacement(b, chess.ParseShape("##", "#."), origin, chess.Blue)
	want = chess.AllLegalMoves(b, hand[1:], chess.Blue, false, origin)
	got = LegalMoves(b, hand[1:], chess.Blue, false, origin)
	assert.Equal(t, want, got)
}

func TestLegalMovesEmptyHand(t *testing.T) {
	assert.Empty(t, LegalMoves(chess.NewBoard(chess.BoardSize), nil, chess.Blue, true, origin))
}

func TestBetterMovesKeepsMaxValue(t *testing.T) {
	b := chess.NewBoard(chess.BoardSize)
	moves := BetterMoves(b, LegalMoves(b, chess.StandardPieces(), chess.Blue, true, origin))
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, 5, m.Score())
	}
}

func TestSelectMoveChoosesLargestPiece(t *testing.T) {
	b := chess.NewBoard(chess.BoardSize)
	hand := chess.StandardPieces()[:4]
	rng := rand.New(rand.NewSource(1))

	for range 20 {
		move, ok := SelectMove(b, hand, chess.Blue, true, origin, rng)
		require.True(t, ok)
		assert.Equal(t, 3, move.Piece.Value)
		assert.True(t, chess.IsLegal(b, move.Shape, move.Position, chess.Blue, true, origin))
	}
}

func TestSelectMoveIsRandomAmongTies(t *testing.T) {
	b := chess.NewBoard(chess.BoardSize)
	hand := chess.StandardPieces()[:4]
	rng := rand.New(rand.NewSource(7))

	seen := make(map[string]struct{})
	for range 200 {
		move, ok := SelectMove(b, hand, chess.Blue, true, origin, rng)
		require.True(t, ok)
		seen[string(move.Piece.ID)+move.Shape.Key()+move.Position.String()] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestSelectMoveReportsNoMove(t *testing.T) {
	b := chess.NewBoard(chess.BoardSize).Apply(chess.ParseShape("#"), origin, chess.Red)
	_, ok := SelectMove(b, chess.StandardPieces(), chess.Blue, true, origin, rand.New(rand.NewSource(1)))
	assert.False(t, ok)
}

func TestSelectPlayerMoveSkipsLockedSpecial(t *testing.T) {
	p := chess.NewPlayer("BLUE", chess.Blue, false, origin)
	require.False(t, p.CanUseSpecial())

	move, ok := SelectPlayerMove(chess.NewBoard(chess.BoardSize), p, rand.New(rand.NewSource(1)))
	require.True(t, ok)
	assert.False(t, move.Piece.Special)
	assert.Equal(t, 5, move.Piece.Value)

	p.BonusScore = chess.SpecialPieceThreshold
	move, ok = RandMoveInBetterMoves(chess.NewBoard(chess.BoardSize), p)
	require.True(t, ok)
	assert.Equal(t, chess.SpecialPieceID, move.Piece.ID)
}

func TestMoveResultAndBonus(t *testing.T) {
	b := chess.NewBoard(chess.BoardSize)
	m := Move{Board: b, Placement: chess.Placement{
		Piece:    chess.StandardPieces()[1],
		Shape:    chess.ParseShape("##"),
		Position: chess.Coordinate{X: 9, Y: 9},
	}}
	assert.Equal(t, 2, m.Score())
	assert.Equal(t, 2, m.BonusCells())

	after := m.Result(chess.Red)
	assert.Equal(t, chess.Red, after.Owner(10, 9))
	assert.Equal(t, chess.NoColor, b.Owner(10, 9))
}
