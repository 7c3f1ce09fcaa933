package chess

// Placement is one legal way to put a piece on the board.
type Placement struct {
	Piece    Piece      `json:"piece"`
	Shape    Shape      `json:"shape"`
	Position Coordinate `json:"position"`
	Rotation int        `json:"rotation"`
	Flipped  bool       `json:"flipped"`
}

// AllLegalMoves searches every distinct orientation of every piece in hand
// at every position whose bounding box fits on the board. Results are
// ordered by hand order, orientation order, then row-major position.
func AllLegalMoves(b Board, hand []Piece, color Color, firstMove bool, start Coordinate) (moves []Placement) {
	for _, piece := range hand {
		moves = append(moves, PieceLegalMoves(b, piece, color, firstMove, start)...)
	}
	return
}

func PieceLegalMoves(b Board, piece Piece, color Color, firstMove bool, start Coordinate) (moves []Placement) {
	eachLegalMove(b, piece, color, firstMove, start, func(p Placement) bool {
		moves = append(moves, p)
		return true
	})
	return
}

// HasLegalMove reports whether AllLegalMoves would return anything.
func HasLegalMove(b Board, hand []Piece, color Color, firstMove bool, start Coordinate) bool {
	found := false
	for _, piece := range hand {
		eachLegalMove(b, piece, color, firstMove, start, func(Placement) bool {
			found = true
			return false
		})
		if found {
			return true
		}
	}
	return false
}

func eachLegalMove(b Board, piece Piece, color Color, firstMove bool, start Coordinate, yield func(Placement) bool) {
	for _, o := range piece.Orientations() {
		rows, cols := o.Shape.Rows(), o.Shape.Cols()
		for y := 0; y <= b.BoardSize-rows; y++ {
			for x := 0; x <= b.BoardSize-cols; x++ {
				pos := Coordinate{X: x, Y: y}
				if !IsLegal(b, o.Shape, pos, color, firstMove, start) {
					continue
				}

				if !yield(Placement{
					Piece:    piece,
					Shape:    o.Shape,
					Position: pos,
					Rotation: o.Rotation,
					Flipped:  o.Flipped,
				}) {
					return
				}
			}
		}
	}
}
