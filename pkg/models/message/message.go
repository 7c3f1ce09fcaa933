package message

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/bytedance/sonic"
)

var (
	ErrUnknownType  = errors.New("unknown message type")
	ErrEmptyPayload = errors.New("empty message payload")
)

type Type string

const (
	Join      Type = "JOIN"
	Welcome   Type = "WELCOME"
	StartGame Type = "START_GAME"
	Move      Type = "MOVE"
	Pass      Type = "PASS"
	Update    Type = "UPDATE"
	GameOver  Type = "GAME_OVER"
	Error     Type = "ERROR"
)

var knownTypes = map[Type]struct{}{
	Join:      {},
	Welcome:   {},
	StartGame: {},
	Move:      {},
	Pass:      {},
	Update:    {},
	GameOver:  {},
	Error:     {},
}

func (t Type) Valid() bool {
	_, c := knownTypes[t]
	return c
}

// Message is the envelope every peer sends and receives.
type Message struct {
	Type    Type            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type JoinPayload struct {
	Name  string      `json:"name"`
	Color chess.Color `json:"color"`
}

type WelcomePayload struct {
	PeerID  PeerID      `json:"peerId"`
	Seat    int         `json:"seat"`
	Color   chess.Color `json:"color"`
	GameUid GameUid     `json:"gameUid"`
}

type StartGamePayload struct {
	GameUid GameUid `json:"gameUid"`
}

// MovePayload asks the host to place a piece already oriented as Shape.
type MovePayload struct {
	PlayerID string           `json:"playerId"`
	PieceID  chess.PieceID    `json:"pieceId"`
	Shape    chess.Shape      `json:"orientationGrid"`
	Position chess.Coordinate `json:"position"`
}

type PassPayload struct {
	PlayerID string `json:"playerId"`
}

// UpdatePayload is the host's whole authoritative state; receivers replace
// theirs with it.
type UpdatePayload struct {
	Board              chess.Board       `json:"board"`
	Players            []chess.Player    `json:"players"`
	CurrentPlayerIndex int               `json:"currentPlayerIndex"`
	Status             chess.Status      `json:"status"`
	TurnNumber         int               `json:"turnNumber"`
	LastMove           *chess.MoveRecord `json:"lastMove,omitempty"`
}

type GameOverPayload struct {
	Players   []chess.Player   `json:"players"`
	Standings []chess.Standing `json:"standings"`
}

type ErrorPayload struct {
	Reason string `json:"reason"`
}

func NewUpdatePayload(g *chess.Game) UpdatePayload {
	c := g.DeepCopy()
	u := UpdatePayload{
		Board:              c.Board,
		Players:            c.Players,
		CurrentPlayerIndex: c.CurrentPlayerIndex,
		Status:             c.Status,
		TurnNumber:         c.TurnNumber,
	}
	if l := len(c.History); l > 0 {
		u.LastMove = &c.History[l-1]
	}
	return u
}

// Game rebuilds a game from the snapshot. History is not carried.
func (u UpdatePayload) Game() *chess.Game {
	return &chess.Game{
		Board:              u.Board,
		Players:            u.Players,
		CurrentPlayerIndex: u.CurrentPlayerIndex,
		Status:             u.Status,
		TurnNumber:         u.TurnNumber,
	}
}

func NewGameOverPayload(g *chess.Game) GameOverPayload {
	return GameOverPayload{
		Players:   g.DeepCopy().Players,
		Standings: g.Standings(),
	}
}

func New(t Type, payload any) (Message, error) {
	if !t.Valid() {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}

	raw, err := sonic.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

func Encode(t Type, payload any) ([]byte, error) {
	m, err := New(t, payload)
	if err != nil {
		return nil, err
	}
	return sonic.Marshal(m)
}

func Decode(data []byte) (m Message, err error) {
	if err = sonic.Unmarshal(data, &m); err != nil {
		return Message{}, err
	}
	if !m.Type.Valid() {
		return Message{}, fmt.Errorf("%w: %q", ErrUnknownType, m.Type)
	}
	if len(m.Payload) == 0 || string(m.Payload) == "null" {
		return Message{}, fmt.Errorf("%w: %s", ErrEmptyPayload, m.Type)
	}
	return m, nil
}

// Unmarshal decodes the payload into v.
func (m Message) Unmarshal(v any) error {
	if len(m.Payload) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyPayload, m.Type)
	}
	return sonic.Unmarshal(m.Payload, v)
}

func (m Message) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
