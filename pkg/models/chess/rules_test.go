package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	mono   = ParseShape("#")
	domino = ParseShape("##")
	origin = Coordinate{X: 0, Y: 0}
)

func TestFirstMoveMustCoverStartCorner(t *testing.T) {
	b := NewBoard(BoardSize)

	assert.False(t, IsLegal(b, mono, Coordinate{X: 1, Y: 0}, Blue, true, origin))
	assert.False(t, IsLegal(b, mono, Coordinate{X: 1, Y: 1}, Blue, true, origin))
	assert.True(t, IsLegal(b, mono, origin, Blue, true, origin))
	assert.True(t, IsLegal(b, domino, origin, Blue, true, origin))

	last := Coordinate{X: BoardSize - 1, Y: BoardSize - 1}
	assert.True(t, IsLegal(b, domino, Coordinate{X: BoardSize - 2, Y: BoardSize - 1}, Red, true, last))
	assert.False(t, IsLegal(b, mono, origin, Red, true, last))
}

func TestOutOfBoundsCellRejectsWholePlacement(t *testing.T) {
	b := NewBoard(BoardSize)
	last := Coordinate{X: BoardSize - 1, Y: BoardSize - 1}

	assert.False(t, IsLegal(b, domino, last, Red, true, last))
	assert.False(t, IsLegal(b, mono, Coordinate{X: -1, Y: 0}, Blue, true, origin))
	assert.False(t, IsLegal(b, mono, Coordinate{X: 0, Y: BoardSize}, Blue, true, origin))
}

func TestOverlapIsIllegal(t *testing.T) {
	b := NewBoard(BoardSize).Apply(mono, origin, Yellow)
	assert.False(t, IsLegal(b, mono, origin, Blue, true, origin))
	assert.False(t, IsLegal(b, domino, origin, Blue, true, origin))
}

func TestSameColorEdgeContactIsIllegal(t *testing.T) {
	b := NewBoard(BoardSize).Apply(mono, origin, Blue)

	assert.False(t, IsLegal(b, mono, Coordinate{X: 1, Y: 0}, Blue, false, origin))
	assert.False(t, IsLegal(b, mono, Coordinate{X: 0, Y: 1}, Blue, false, origin))
	// touches diagonally through (1,1) but (1,0) shares an edge with (0,0)
	assert.False(t, IsLegal(b, ParseShape("#", "#"), Coordinate{X: 1, Y: 0}, Blue, false, origin))
}

func TestOtherColorMayTouchEdges(t *testing.T) {
	b := NewBoard(BoardSize).
		Apply(mono, origin, Blue).
		Apply(mono, Coordinate{X: 2, Y: 1}, Yellow)

	assert.True(t, IsLegal(b, mono, Coordinate{X: 1, Y: 0}, Yellow, false, Coordinate{X: BoardSize - 1, Y: 0}))
}

func TestLaterMovesNeedSameColorCorner(t *testing.T) {
	b := NewBoard(BoardSize).Apply(mono, origin, Blue)

	assert.True(t, IsLegal(b, mono, Coordinate{X: 1, Y: 1}, Blue, false, origin))
	assert.True(t, IsLegal(b, domino, Coordinate{X: 1, Y: 1}, Blue, false, origin))
	assert.False(t, IsLegal(b, mono, Coordinate{X: 5, Y: 5}, Blue, false, origin))

	// a diagonal touch of another color does not count
	b = b.Apply(mono, Coordinate{X: 6, Y: 6}, Yellow)
	assert.False(t, IsLegal(b, mono, Coordinate{X: 5, Y: 5}, Blue, false, origin))
}

func TestApplyPlacementReturnsNewBoard(t *testing.T) {
	b := NewBoard(BoardSize)
	next := ApplyPlacement(b, ParseShape("##", ".#"), origin, Green)

	assert.Equal(t, 0, b.Count(Green))
	assert.Equal(t, 3, next.Count(Green))
	assert.Equal(t, Green, next.Owner(0, 0))
	assert.Equal(t, Green, next.Owner(1, 0))
	assert.Equal(t, Green, next.Owner(1, 1))
	assert.Equal(t, NoColor, next.Owner(0, 1))
}
