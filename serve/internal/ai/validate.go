package ai

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
)

var ErrBadAnswer = errors.New("worker answer does not fit the game")

// Validate checks a worker's answer against the authoritative game. A pass
// is only accepted when the player really has no move.
func Validate(g *chess.Game, result message.AIResult) error {
	p := g.CurrentPlayer()
	if p == nil {
		return chess.ErrNotPlaying
	}

	if !result.Ok {
		if p.HasLegalMove(g.Board) {
			return fmt.Errorf("%w: pass while moves remain", ErrBadAnswer)
		}
		return nil
	}

	piece, c := p.Piece(result.Piece.ID)
	if !c {
		return fmt.Errorf("%w: %s", ErrBadAnswer, chess.ErrUnknownPiece)
	}
	if !piece.HasOrientation(result.Shape) {
		return fmt.Errorf("%w: %s", ErrBadAnswer, chess.ErrShapeMismatch)
	}
	if piece.Special && !p.CanUseSpecial() {
		return fmt.Errorf("%w: %s", ErrBadAnswer, chess.ErrSpecialLocked)
	}
	if !chess.IsLegal(g.Board, result.Shape, result.Position, p.Color, p.IsFirstMove(), p.Corner) {
		return fmt.Errorf("%w: %s", ErrBadAnswer, chess.ErrIllegalPlacement)
	}
	return nil
}
