package chess

type Player struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Color      Color      `json:"color"`
	Pieces     []Piece    `json:"pieces"`
	IsHuman    bool       `json:"isHuman"`
	HasPassed  bool       `json:"hasPassed"`
	BonusScore int        `json:"bonusScore"`
	Corner     Coordinate `json:"corner"`
}

func NewPlayer(id string, color Color, isHuman bool, corner Coordinate) Player {
	return Player{
		ID:      id,
		Color:   color,
		Pieces:  InitialHand(color),
		IsHuman: isHuman,
		Corner:  corner,
	}
}

// IsFirstMove holds while no piece has left the hand.
func (p Player) IsFirstMove() bool {
	return len(p.Pieces) == len(InitialHand(p.Color))
}

func (p Player) Piece(id PieceID) (Piece, bool) {
	for _, piece := range p.Pieces {
		if piece.ID == id {
			return piece, true
		}
	}
	return Piece{}, false
}

func (p Player) CanUseSpecial() bool {
	return Score(p) >= SpecialPieceThreshold
}

// Playable is the hand minus the special piece while it is still locked.
func (p Player) Playable() []Piece {
	if p.CanUseSpecial() {
		return p.Pieces
	}

	playable := make([]Piece, 0, len(p.Pieces))
	for _, piece := range p.Pieces {
		if !piece.Special {
			playable = append(playable, piece)
		}
	}
	return playable
}

func (p Player) LegalMoves(b Board) []Placement {
	return AllLegalMoves(b, p.Playable(), p.Color, p.IsFirstMove(), p.Corner)
}

func (p Player) HasLegalMove(b Board) bool {
	return HasLegalMove(b, p.Playable(), p.Color, p.IsFirstMove(), p.Corner)
}

func (p Player) DeepCopy() Player {
	c := p
	c.Pieces = append([]Piece(nil), p.Pieces...)
	return c
}

func (p *Player) removePiece(id PieceID) {
	for i, piece := range p.Pieces {
		if piece.ID == id {
			p.Pieces = append(p.Pieces[:i:i], p.Pieces[i+1:]...)
			return
		}
	}
}
