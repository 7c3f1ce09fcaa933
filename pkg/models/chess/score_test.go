package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIsRecomputable(t *testing.T) {
	p := NewPlayer("BLUE", Blue, true, origin)
	p.removePiece("p4")
	p.BonusScore = 3

	assert.Equal(t, Score(p), Score(p))
	assert.Equal(t, 4+3, Score(p))
}

func TestFullHandScoresZero(t *testing.T) {
	for _, color := range AllColors {
		p := NewPlayer(color.String(), color, false, origin)
		assert.Equal(t, 95, InitialCells(color))
		assert.Zero(t, Score(p), "color %s", color)
	}
}

func TestPlainPlacementAddsItsValue(t *testing.T) {
	p := NewPlayer("BLUE", Blue, true, origin)
	before := Score(p)

	piece, _ := p.Piece("p10")
	p.removePiece(piece.ID)
	p.BonusScore += PlacementCredit(piece, 0)

	assert.Equal(t, before+piece.Value, Score(p))
}

func TestBonusCells(t *testing.T) {
	square := ParseShape("##", "##")
	assert.Equal(t, 4, BonusCells(square, Coordinate{X: 9, Y: 9}))
	assert.Equal(t, 1, BonusCells(square, Coordinate{X: 8, Y: 8}))
	assert.Equal(t, 0, BonusCells(square, origin))
	assert.Equal(t, 1, BonusCells(mono, Coordinate{X: 15, Y: 15}))
}

func TestSpecialPieceScoresDouble(t *testing.T) {
	special, _ := SpecialPiece(Blue)
	credit := PlacementCredit(special, 2)
	assert.Equal(t, 2*2+6, credit)

	p := NewPlayer("BLUE", Blue, true, origin)
	p.removePiece(SpecialPieceID)
	p.BonusScore += credit
	assert.Equal(t, 16, Score(p))

	// a standard six-cell piece covering the same two bonus squares
	plain := NewPiece("plain", special.Shape)
	assert.Equal(t, 2*(plain.Value+PlacementCredit(plain, 2)), Score(p))
}

func TestPerfectBonus(t *testing.T) {
	p := NewPlayer("BLUE", Blue, true, origin)
	p.Pieces = nil
	assert.Equal(t, 95+PerfectBonus, Score(p))
}

func TestSpecialPieceGate(t *testing.T) {
	p := NewPlayer("BLUE", Blue, true, origin)
	assert.False(t, p.CanUseSpecial())
	assert.Len(t, p.Playable(), 21)

	p.BonusScore = SpecialPieceThreshold
	assert.True(t, p.CanUseSpecial())
	assert.Len(t, p.Playable(), 22)
}
