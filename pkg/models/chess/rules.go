package chess

// IsLegal decides whether color may put shape with its top-left at pos.
//
// Every occupied cell must be on the board, empty, and free of same-color
// edge neighbours. At least one cell must cover start on a first move, or
// touch a same-color cell diagonally otherwise.
func IsLegal(b Board, shape Shape, pos Coordinate, color Color, firstMove bool, start Coordinate) bool {
	anchored := false
	for _, cell := range shape.Cells() {
		at := pos.Add(cell)
		if !b.InBounds(at.X, at.Y) {
			return false
		}

		if b.At(at) != NoColor {
			return false
		}

		for _, offset := range edgeOffsets {
			n := at.Add(offset)
			if b.InBounds(n.X, n.Y) && b.At(n) == color {
				return false
			}
		}

		if anchored {
			continue
		}

		if firstMove {
			anchored = at == start
			continue
		}

		for _, offset := range cornerOffsets {
			n := at.Add(offset)
			if b.InBounds(n.X, n.Y) && b.At(n) == color {
				anchored = true
				break
			}
		}
	}

	return anchored
}

// ApplyPlacement returns the board after the placement. Legality is the
// caller's responsibility.
func ApplyPlacement(b Board, shape Shape, pos Coordinate, color Color) Board {
	return b.Apply(shape, pos, color)
}
