package chess

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrSeatCount        = errors.New("a game needs exactly four seats")
	ErrDuplicateColor   = errors.New("color already seated")
	ErrNotLobby         = errors.New("game already started")
	ErrNotPlaying       = errors.New("game is not in progress")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrUnknownPiece     = errors.New("piece not in hand")
	ErrShapeMismatch    = errors.New("shape is not an orientation of the piece")
	ErrSpecialLocked    = errors.New("special piece is locked")
	ErrIllegalPlacement = errors.New("illegal placement")
	ErrUnknownSeat      = errors.New("no such seat")
)

const SeatCount = 4

type Status int8

const (
	Lobby Status = iota
	Playing
	Finished
)

func (s Status) String() string {
	switch s {
	case Lobby:
		return "lobby"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return ""
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "lobby":
		*s = Lobby
	case "playing":
		*s = Playing
	case "finished":
		*s = Finished
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Seat describes who sits in one of the four places before the game starts.
type Seat struct {
	ID      string
	Name    string
	Color   Color
	IsHuman bool
}

// MoveRecord is one entry of the game history; Passed entries carry no piece.
type MoveRecord struct {
	TurnNumber int        `json:"turnNumber"`
	Player     Color      `json:"player"`
	PieceID    PieceID    `json:"pieceId,omitempty"`
	Position   Coordinate `json:"position"`
	Rotation   int        `json:"rotation"`
	Flipped    bool       `json:"flipped"`
	Passed     bool       `json:"passed"`
	Auto       bool       `json:"auto"`
	Credit     int        `json:"credit"`
}

// Game is the whole mutable state of one round. It is owned by one caller at
// a time and is not safe for concurrent use.
type Game struct {
	Board              Board        `json:"board"`
	Players            []Player     `json:"players"`
	CurrentPlayerIndex int          `json:"currentPlayerIndex"`
	Status             Status       `json:"status"`
	TurnNumber         int          `json:"turnNumber"`
	History            []MoveRecord `json:"history"`
}

func NewGame(seats ...Seat) (*Game, error) {
	if len(seats) != SeatCount {
		return nil, fmt.Errorf("%w: got %d", ErrSeatCount, len(seats))
	}

	corners := Corners(BoardSize)
	used := make(map[Color]struct{}, SeatCount)
	players := make([]Player, 0, SeatCount)
	for i, seat := range seats {
		if !seat.Color.Valid() {
			return nil, fmt.Errorf("%w: seat %d", ErrUnknownColor, i)
		}
		if _, c := used[seat.Color]; c {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColor, seat.Color)
		}
		used[seat.Color] = struct{}{}

		id := seat.ID
		if id == "" {
			id = seat.Color.String()
		}
		p := NewPlayer(id, seat.Color, seat.IsHuman, corners[i])
		p.Name = seat.Name
		players = append(players, p)
	}

	return &Game{
		Board:   NewBoard(BoardSize),
		Players: players,
		Status:  Lobby,
	}, nil
}

func (g *Game) Start() error {
	if g.Status != Lobby {
		return ErrNotLobby
	}

	g.Status = Playing
	g.CurrentPlayerIndex = 0
	g.TurnNumber = 1
	g.beginTurn()
	return nil
}

func (g *Game) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}
	return &g.Players[g.CurrentPlayerIndex]
}

// CheckTurn returns ErrNotYourTurn unless playerID holds the current turn.
func (g *Game) CheckTurn(playerID string) error {
	if g.Status != Playing {
		return ErrNotPlaying
	}
	if p := g.CurrentPlayer(); p == nil || p.ID != playerID {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, playerID)
	}
	return nil
}

// Place puts the current player's piece, already oriented as shape, at pos.
// A rejected placement leaves the game untouched.
func (g *Game) Place(pieceID PieceID, shape Shape, pos Coordinate) (MoveRecord, error) {
	if g.Status != Playing {
		return MoveRecord{}, ErrNotPlaying
	}

	p := g.CurrentPlayer()
	piece, c := p.Piece(pieceID)
	if !c {
		return MoveRecord{}, fmt.Errorf("%w: %s", ErrUnknownPiece, pieceID)
	}

	rotation, flipped, c := orientationOf(piece, shape)
	if !c {
		return MoveRecord{}, fmt.Errorf("%w: %s", ErrShapeMismatch, pieceID)
	}

	if piece.Special && !p.CanUseSpecial() {
		return MoveRecord{}, fmt.Errorf("%w: score %d of %d", ErrSpecialLocked, Score(*p), SpecialPieceThreshold)
	}

	if !IsLegal(g.Board, shape, pos, p.Color, p.IsFirstMove(), p.Corner) {
		return MoveRecord{}, fmt.Errorf("%w: %s at %s", ErrIllegalPlacement, pieceID, pos)
	}

	credit := PlacementCredit(piece, BonusCells(shape, pos))
	g.Board = ApplyPlacement(g.Board, shape, pos, p.Color)
	p.removePiece(pieceID)
	p.BonusScore += credit

	record := MoveRecord{
		TurnNumber: g.TurnNumber,
		Player:     p.Color,
		PieceID:    pieceID,
		Position:   pos,
		Rotation:   rotation,
		Flipped:    flipped,
		Credit:     credit,
	}
	g.History = append(g.History, record)
	g.AdvanceTurn()
	return record, nil
}

// PlaceOriented is Place with the orientation given as transform parameters.
func (g *Game) PlaceOriented(pieceID PieceID, rotation int, flipped bool, pos Coordinate) (MoveRecord, error) {
	if g.Status != Playing {
		return MoveRecord{}, ErrNotPlaying
	}

	piece, c := g.CurrentPlayer().Piece(pieceID)
	if !c {
		return MoveRecord{}, fmt.Errorf("%w: %s", ErrUnknownPiece, pieceID)
	}
	return g.Place(pieceID, piece.Shape.Transform(rotation, flipped), pos)
}

// Pass gives up the current player's turns for the rest of the round.
func (g *Game) Pass() error {
	if g.Status != Playing {
		return ErrNotPlaying
	}

	g.pass(false)
	g.AdvanceTurn()
	return nil
}

// PassPlayer passes seat i out of turn, as when a player leaves. Passing the
// current player is a normal Pass; an already passed seat is left alone.
func (g *Game) PassPlayer(i int) error {
	if g.Status != Playing {
		return ErrNotPlaying
	}
	if i < 0 || i >= len(g.Players) {
		return fmt.Errorf("%w: seat %d", ErrUnknownSeat, i)
	}
	if i == g.CurrentPlayerIndex {
		return g.Pass()
	}

	g.passSeat(i, false)
	return nil
}

// AdvanceTurn moves to the next player who has not passed, forcing a pass on
// anyone without a legal move, and finishes the game once everyone passed.
func (g *Game) AdvanceTurn() {
	g.next()
	g.beginTurn()
}

func (g *Game) next() {
	next, finished := NextTurn(g.Players, g.CurrentPlayerIndex)
	if finished {
		g.Status = Finished
		return
	}
	g.CurrentPlayerIndex = next
	g.TurnNumber++
}

func (g *Game) beginTurn() {
	for g.Status == Playing {
		p := g.CurrentPlayer()
		if !p.HasPassed && p.HasLegalMove(g.Board) {
			return
		}
		g.pass(true)
		g.next()
	}
}

func (g *Game) pass(auto bool) {
	g.passSeat(g.CurrentPlayerIndex, auto)
}

func (g *Game) passSeat(i int, auto bool) {
	p := &g.Players[i]
	if p.HasPassed {
		return
	}
	p.HasPassed = true
	g.History = append(g.History, MoveRecord{
		TurnNumber: g.TurnNumber,
		Player:     p.Color,
		Passed:     true,
		Auto:       auto,
	})
}

// NextTurn scans circularly after current for a player who has not passed.
// finished is true when every player has passed.
func NextTurn(players []Player, current int) (next int, finished bool) {
	n := len(players)
	for step := 1; step <= n; step++ {
		i := (current + step) % n
		if !players[i].HasPassed {
			return i, false
		}
	}
	return current, true
}

func orientationOf(piece Piece, shape Shape) (rotation int, flipped bool, found bool) {
	if shape.Size() != piece.Value {
		return
	}
	for _, o := range piece.Orientations() {
		if o.Shape.Equal(shape) {
			return o.Rotation, o.Flipped, true
		}
	}
	return
}

// Standing is one line of the final table.
type Standing struct {
	Seat      int    `json:"seat"`
	PlayerID  string `json:"playerId"`
	Color     Color  `json:"color"`
	Score     int    `json:"score"`
	Remaining int    `json:"remaining"`
	Perfect   bool   `json:"perfect"`
}

// Standings ranks players by score, then by fewer pieces left, then by seat.
func (g *Game) Standings() []Standing {
	standings := make([]Standing, 0, len(g.Players))
	for i, p := range g.Players {
		standings = append(standings, Standing{
			Seat:      i,
			PlayerID:  p.ID,
			Color:     p.Color,
			Score:     Score(p),
			Remaining: len(p.Pieces),
			Perfect:   len(p.Pieces) == 0,
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Remaining != b.Remaining {
			return a.Remaining < b.Remaining
		}
		return a.Seat < b.Seat
	})
	return standings
}

func (g *Game) Winner() (Standing, bool) {
	if g.Status != Finished || len(g.Players) == 0 {
		return Standing{}, false
	}
	return g.Standings()[0], true
}

func (g *Game) DeepCopy() *Game {
	c := *g
	c.Board = g.Board.DeepCopy()
	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p.DeepCopy()
	}
	c.History = append([]MoveRecord(nil), g.History...)
	return &c
}
