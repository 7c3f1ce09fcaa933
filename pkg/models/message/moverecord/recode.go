package moverecord

import (
	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
)

func NewGameStartRecode(uid message.GameUid, g *chess.Game) *GameStartRecode {
	recode := &GameStartRecode{
		GameUid:   uid,
		BoardSize: g.Board.BoardSize,
	}
	for _, p := range g.Players {
		recode.Seats = append(recode.Seats, SeatRecode{
			PlayerID: p.ID,
			Name:     p.Name,
			Color:    p.Color.String(),
			IsHuman:  p.IsHuman,
		})
	}
	return recode
}

// NewMoveRecode flattens one history entry; Score is the player's score
// after the move.
func NewMoveRecode(uid message.GameUid, g *chess.Game, record chess.MoveRecord) *MoveRecode {
	recode := &MoveRecode{
		GameUid:    uid,
		TurnNumber: record.TurnNumber,
		Player:     record.Player.String(),
		PieceID:    string(record.PieceID),
		X:          record.Position.X,
		Y:          record.Position.Y,
		Rotation:   record.Rotation,
		Flipped:    record.Flipped,
		Passed:     record.Passed,
		Auto:       record.Auto,
		Credit:     record.Credit,
	}

	for _, p := range g.Players {
		if p.Color == record.Player {
			recode.Score = chess.Score(p)
		}
	}

	if record.Passed {
		return recode
	}
	for _, piece := range chess.InitialHand(record.Player) {
		if piece.ID == record.PieceID {
			recode.Shape = piece.Shape.Transform(record.Rotation, record.Flipped).String()
		}
	}
	return recode
}

func NewGameEndRecode(uid message.GameUid, g *chess.Game) *GameEndRecode {
	recode := &GameEndRecode{
		GameUid: uid,
		Turns:   g.TurnNumber,
	}
	if winner, ok := g.Winner(); ok {
		recode.Winner = winner.Color.String()
	}
	for _, s := range g.Standings() {
		recode.Standings = append(recode.Standings, StandingRecode{
			PlayerID:  s.PlayerID,
			Color:     s.Color.String(),
			Score:     s.Score,
			Remaining: s.Remaining,
			Perfect:   s.Perfect,
		})
	}
	return recode
}
