package chess

const (
	PerfectBonus          = 15
	SpecialPieceThreshold = 20
)

// BonusSquares award one point to whoever covers them.
var BonusSquares = []Coordinate{
	{X: 9, Y: 9},
	{X: 10, Y: 9},
	{X: 9, Y: 10},
	{X: 10, Y: 10},
	{X: 4, Y: 4},
	{X: 15, Y: 4},
	{X: 4, Y: 15},
	{X: 15, Y: 15},
}

func IsBonusSquare(c Coordinate) bool {
	for _, bs := range BonusSquares {
		if bs == c {
			return true
		}
	}
	return false
}

func BonusCells(shape Shape, pos Coordinate) (count int) {
	for _, cell := range shape.Cells() {
		if IsBonusSquare(pos.Add(cell)) {
			count++
		}
	}
	return
}

// PlacementCredit is what a placement adds to Player.BonusScore. The special
// piece doubles its bonus cells and credits its value a second time.
func PlacementCredit(piece Piece, bonusCells int) int {
	if piece.Special {
		return 2*bonusCells + piece.Value
	}
	return bonusCells
}

// InitialCells is the cell total of a full hand for color.
func InitialCells(color Color) int {
	return HandValue(InitialHand(color))
}

// Score is recomputed from the hand each time; BonusScore is the only
// accumulated part.
func Score(p Player) int {
	score := InitialCells(p.Color) - HandValue(p.Pieces) + p.BonusScore
	if len(p.Pieces) == 0 {
		score += PerfectBonus
	}
	return score
}
