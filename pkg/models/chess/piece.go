package chess

import "fmt"

type PieceID string

// SpecialPieceID names the per-color six-cell piece in every hand.
const SpecialPieceID PieceID = "special"

// Piece is an immutable named shape. Value is its cell count.
type Piece struct {
	ID      PieceID `json:"id"`
	Shape   Shape   `json:"shape"`
	Value   int     `json:"value"`
	Special bool    `json:"special,omitempty"`
}

func NewPiece(id PieceID, shape Shape) Piece {
	return Piece{
		ID:      id,
		Shape:   shape,
		Value:   shape.Size(),
		Special: id == SpecialPieceID,
	}
}

func (p Piece) Orientations() []Orientation {
	return Orientations(p.Shape)
}

// HasOrientation reports whether s is one of p's rotation/reflection variants.
func (p Piece) HasOrientation(s Shape) bool {
	if s.Size() != p.Value {
		return false
	}
	for _, o := range p.Orientations() {
		if o.Shape.Equal(s) {
			return true
		}
	}
	return false
}

var standardShapes = []Shape{
	// 1
	ParseShape("#"),
	// 2
	ParseShape("##"),
	// 3
	ParseShape("###"),
	ParseShape("##", "#."),
	// 4
	ParseShape("####"),
	ParseShape("###", ".#."),
	ParseShape("###", "..#"),
	ParseShape("##", "##"),
	ParseShape("##.", ".##"),
	// 5
	ParseShape("#####"),
	ParseShape("####", "#..."),
	ParseShape("####", ".#.."),
	ParseShape("##.", ".##", ".#."),
	ParseShape("##.", ".##", "..#"),
	ParseShape("###", "##."),
	ParseShape("###", "#.#"),
	ParseShape("###", ".#.", ".#."),
	ParseShape("###", "..#", "..#"),
	ParseShape("##..", ".###"),
	ParseShape(".#.", "###", ".#."),
	ParseShape("#..", "###", "..#"),
}

var specialShapes = map[Color]Shape{
	Blue:      ParseShape("######"),
	Red:       ParseShape("##.", "###", ".#."),
	Green:     ParseShape("#.", "#.", "#.", "#.", "##"),
	Yellow:    ParseShape(".#.", "###", ".#.", ".#."),
	LightBlue: ParseShape("#..", "##.", ".##", "..#"),
	Pink:      ParseShape("..#", ".##", "###"),
	Orange:    ParseShape(".#.", "###", "#.#"),
	Purple:    ParseShape("###", "#..", "#..", "#.."),
}

// StandardPieces returns the 21 pieces every hand starts with.
func StandardPieces() []Piece {
	pieces := make([]Piece, 0, len(standardShapes))
	for i, shape := range standardShapes {
		pieces = append(pieces, NewPiece(PieceID(fmt.Sprintf("p%d", i)), shape))
	}
	return pieces
}

func SpecialPiece(color Color) (Piece, bool) {
	shape, c := specialShapes[color]
	if !c {
		return Piece{}, false
	}
	return NewPiece(SpecialPieceID, shape), true
}

// InitialHand returns the standard pieces followed by the color's special piece.
func InitialHand(color Color) []Piece {
	hand := StandardPieces()
	if special, c := SpecialPiece(color); c {
		hand = append(hand, special)
	}
	return hand
}

// HandValue sums the cell counts of the pieces.
func HandValue(pieces []Piece) (value int) {
	for _, p := range pieces {
		value += p.Value
	}
	return
}
