package chess

const BoardSize = 20

// Board is a square grid of owners, stored row-major. Cells only ever go
// from NoColor to a player color.
type Board struct {
	BoardSize int     `json:"boardSize"`
	Cells     []Color `json:"cells"`
}

func NewBoard(boardSize int) Board {
	return Board{
		BoardSize: boardSize,
		Cells:     make([]Color, boardSize*boardSize),
	}
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.BoardSize && y < b.BoardSize
}

// Owner returns the color at (x, y). The caller checks bounds first.
func (b Board) Owner(x, y int) Color {
	return b.Cells[y*b.BoardSize+x]
}

func (b Board) At(c Coordinate) Color {
	return b.Owner(c.X, c.Y)
}

// Apply returns a new board with every occupied cell of shape, offset by pos,
// set to color. It does not validate; see IsLegal.
func (b Board) Apply(shape Shape, pos Coordinate, color Color) (newBoard Board) {
	newBoard = b.DeepCopy()
	for _, cell := range shape.Cells() {
		at := pos.Add(cell)
		newBoard.Cells[at.Y*b.BoardSize+at.X] = color
	}
	return
}

func (b Board) DeepCopy() Board {
	return Board{
		BoardSize: b.BoardSize,
		Cells:     append([]Color(nil), b.Cells...),
	}
}

func (b Board) Count(color Color) (count int) {
	for _, c := range b.Cells {
		if c == color {
			count++
		}
	}
	return
}

// Rows returns the grid as [row][column].
func (b Board) Rows() [][]Color {
	rows := make([][]Color, b.BoardSize)
	for y := range b.BoardSize {
		rows[y] = append([]Color(nil), b.Cells[y*b.BoardSize:(y+1)*b.BoardSize]...)
	}
	return rows
}
