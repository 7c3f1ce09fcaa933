package chess

import "fmt"

// Coordinate is a board cell, X is the column and Y the row.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

var (
	edgeOffsets = [...]Coordinate{
		{X: 1, Y: 0},
		{X: -1, Y: 0},
		{X: 0, Y: 1},
		{X: 0, Y: -1},
	}

	cornerOffsets = [...]Coordinate{
		{X: 1, Y: 1},
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: -1, Y: 1},
	}
)

// Corners returns the four start corners of a board of the given size,
// clockwise from the top-left. Seat i starts from Corners(size)[i].
func Corners(boardSize int) [4]Coordinate {
	last := boardSize - 1
	return [...]Coordinate{
		{X: 0, Y: 0},
		{X: last, Y: 0},
		{X: last, Y: last},
		{X: 0, Y: last},
	}
}
