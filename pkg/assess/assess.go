package assess

import (
	"sync"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
)

// LegalMoves enumerates the same moves as chess.AllLegalMoves, in the same
// order, searching each piece in its own goroutine.
func LegalMoves(b chess.Board, hand []chess.Piece, color chess.Color, firstMove bool, start chess.Coordinate) []chess.Placement {
	l := len(hand)
	if l == 0 {
		return nil
	}

	perPiece := make([][]chess.Placement, l)

	var wg sync.WaitGroup
	wg.Add(l)
	for i, piece := range hand {
		go func(i int, piece chess.Piece) {
			perPiece[i] = chess.PieceLegalMoves(b, piece, color, firstMove, start)
			wg.Done()
		}(i, piece)
	}
	wg.Wait()

	var moves []chess.Placement
	for _, m := range perPiece {
		moves = append(moves, m...)
	}
	return moves
}

// PlayerMoves is LegalMoves over the pieces p may currently play.
func PlayerMoves(b chess.Board, p chess.Player) []chess.Placement {
	return LegalMoves(b, p.Playable(), p.Color, p.IsFirstMove(), p.Corner)
}
