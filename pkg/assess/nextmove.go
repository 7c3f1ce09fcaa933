package assess

import (
	"math/rand"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
)

// BetterMoves keeps the moves whose piece has the largest value.
func BetterMoves(b chess.Board, placements []chess.Placement) []Move {
	best := -1
	var moves []Move
	for _, p := range placements {
		m := Move{Board: b, Placement: p}
		switch score := m.Score(); {
		case score > best:
			best = score
			moves = append(moves[:0], m)
		case score == best:
			moves = append(moves, m)
		}
	}
	return moves
}

// SelectMove picks uniformly among the best moves. ok is false when there is
// no legal move and the player has to pass.
func SelectMove(b chess.Board, hand []chess.Piece, color chess.Color, firstMove bool, start chess.Coordinate, rng *rand.Rand) (move chess.Placement, ok bool) {
	moves := BetterMoves(b, LegalMoves(b, hand, color, firstMove, start))
	if len(moves) == 0 {
		return
	}
	return moves[rng.Intn(len(moves))].Placement, true
}

// SelectPlayerMove is SelectMove for the pieces p may currently play.
func SelectPlayerMove(b chess.Board, p chess.Player, rng *rand.Rand) (chess.Placement, bool) {
	return SelectMove(b, p.Playable(), p.Color, p.IsFirstMove(), p.Corner, rng)
}

func RandMoveInBetterMoves(b chess.Board, p chess.Player) (chess.Placement, bool) {
	return SelectPlayerMove(b, p, rand.New(rand.NewSource(time.Now().UnixNano())))
}
