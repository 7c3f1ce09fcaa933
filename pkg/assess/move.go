package assess

import (
	"github.com/HuXin0817/connect-corners/pkg/models/chess"
)

type Move struct {
	chess.Board
	chess.Placement
}

// Score is the greedy value of a move: the number of cells it covers.
func (m Move) Score() int {
	return m.Placement.Piece.Value
}

// BonusCells counts the bonus squares the move would cover.
func (m Move) BonusCells() int {
	return chess.BonusCells(m.Placement.Shape, m.Placement.Position)
}

// Result is the board after the move is applied for color.
func (m Move) Result(color chess.Color) chess.Board {
	return chess.ApplyPlacement(m.Board, m.Placement.Shape, m.Placement.Position, color)
}
