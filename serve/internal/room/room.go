package room

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrRoomFull       = errors.New("room is full")
	ErrAlreadyStarted = errors.New("game already started")
	ErrColorTaken     = errors.New("color already taken")
	ErrColorLocked    = errors.New("color is locked")
	ErrNotSeated      = errors.New("peer has no seat")
)

// Mover chooses a move for the current player of g.
type Mover interface {
	SelectMove(ctx context.Context, uid message.GameUid, g *chess.Game) (chess.Placement, bool)
}

// Recorder persists the course of a game.
type Recorder interface {
	RecordStart(ctx context.Context, uid message.GameUid, g *chess.Game) error
	RecordMove(ctx context.Context, uid message.GameUid, g *chess.Game, record chess.MoveRecord) error
	RecordEnd(ctx context.Context, uid message.GameUid, g *chess.Game) error
}

// Broadcaster delivers encoded messages to peers.
type Broadcaster interface {
	Broadcast(data []byte)
	SendTo(id message.PeerID, data []byte) bool
}

type Seat struct {
	PeerID  message.PeerID `json:"peerId,omitempty"`
	Name    string         `json:"name,omitempty"`
	Color   chess.Color    `json:"color"`
	IsHuman bool           `json:"isHuman"`
}

type Options struct {
	Mover    Mover
	Recorder Recorder
	Stats    stats.Store
	Rand     *rand.Rand
	// OnFinish runs once under the room lock when the game ends. It must not
	// block or call back into the room.
	OnFinish func()
}

// Room is the authority for one game: it owns the only writable copy of the
// state and every change goes through it.
type Room struct {
	ID      string
	Name    string
	GameUid message.GameUid

	mu       sync.Mutex
	driveMu  sync.Mutex
	seats    []Seat
	game     *chess.Game
	finished bool
	out      Broadcaster
	opts     Options
	logx.Logger
}

func New(id, name string, out Broadcaster, opts Options) *Room {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Room{
		ID:      id,
		Name:    name,
		GameUid: message.NewGameUid(),
		out:     out,
		opts:    opts,
		Logger:  logx.WithContext(context.Background()).WithFields(logx.Field("room", id)),
	}
}

// Join seats a human peer. An unset color takes the first free base color.
func (r *Room) Join(ctx context.Context, peer message.PeerID, name string, color chess.Color) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game != nil {
		return 0, ErrAlreadyStarted
	}
	if i, c := r.seatOf(peer); c {
		return i, nil
	}
	if len(r.seats) >= chess.SeatCount {
		return 0, ErrRoomFull
	}

	if color == chess.NoColor {
		color = r.freeBaseColor()
	}
	if r.colorTaken(color) {
		return 0, fmt.Errorf("%w: %s", ErrColorTaken, color)
	}
	if err := r.checkUnlocked(ctx, name, color); err != nil {
		return 0, err
	}

	r.seats = append(r.seats, Seat{PeerID: peer, Name: name, Color: color, IsHuman: true})
	return len(r.seats) - 1, nil
}

func (r *Room) checkUnlocked(ctx context.Context, name string, color chess.Color) error {
	if _, locked := stats.UnlockRequirement(color); !locked {
		return nil
	}
	if r.opts.Stats == nil || name == "" {
		return fmt.Errorf("%w: %s", ErrColorLocked, color)
	}

	s, err := r.opts.Stats.Get(ctx, name)
	if err != nil {
		return err
	}
	if !stats.Unlocked(s, color) {
		return fmt.Errorf("%w: %s", ErrColorLocked, color)
	}
	return nil
}

func (r *Room) colorTaken(color chess.Color) bool {
	for _, s := range r.seats {
		if s.Color == color {
			return true
		}
	}
	return false
}

func (r *Room) freeBaseColor() chess.Color {
	for _, color := range stats.BaseColors {
		if !r.colorTaken(color) {
			return color
		}
	}
	return chess.NoColor
}

// Leave frees a lobby seat. Once the game runs the seat stays and the player
// is passed for the rest of the round.
func (r *Room) Leave(ctx context.Context, peer message.PeerID) {
	r.mu.Lock()
	running := r.leaveLocked(ctx, peer)
	r.mu.Unlock()

	if running {
		r.drive(ctx)
	}
}

func (r *Room) leaveLocked(ctx context.Context, peer message.PeerID) bool {
	i, c := r.seatOf(peer)
	if !c {
		return false
	}
	if r.game == nil {
		r.seats = append(r.seats[:i:i], r.seats[i+1:]...)
		return false
	}
	if r.game.Status != chess.Playing {
		return false
	}

	r.Infof("%s left during the game", r.seats[i].Color)
	if err := r.passLocked(ctx, i); err != nil {
		r.Error(err)
	}
	return true
}

func (r *Room) seatOf(peer message.PeerID) (int, bool) {
	for i, s := range r.seats {
		if s.IsHuman && s.PeerID == peer {
			return i, true
		}
	}
	return 0, false
}

func (r *Room) Seats() []Seat {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Seat(nil), r.seats...)
}

// Snapshot returns a copy of the game, or nil while in the lobby.
func (r *Room) Snapshot() *chess.Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return nil
	}
	return r.game.DeepCopy()
}

// Start fills the empty seats with computers and begins the game. Computer
// turns are played in the background.
func (r *Room) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.game != nil {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}

	human := chess.NoColor
	if len(r.seats) > 0 {
		human = r.seats[0].Color
	}
	for _, color := range stats.ComputerColors(human, chess.SeatCount, r.opts.Rand) {
		if len(r.seats) == chess.SeatCount {
			break
		}
		if !r.colorTaken(color) {
			r.seats = append(r.seats, Seat{Color: color})
		}
	}

	seats := make([]chess.Seat, 0, len(r.seats))
	for _, s := range r.seats {
		seats = append(seats, chess.Seat{ID: r.playerID(s), Name: s.Name, Color: s.Color, IsHuman: s.IsHuman})
	}

	g, err := chess.NewGame(seats...)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.game = g
	if err = r.game.Start(); err != nil {
		r.mu.Unlock()
		return err
	}

	if r.opts.Recorder != nil {
		if err := r.opts.Recorder.RecordStart(ctx, r.GameUid, r.game); err != nil {
			r.Errorf("record start: %v", err)
		}
	}
	for _, record := range r.game.History {
		r.recordMove(ctx, record)
	}
	r.Infof("game %s started", r.GameUid)
	r.broadcast(message.StartGame, message.StartGamePayload{GameUid: r.GameUid})
	r.afterChangeLocked(ctx)
	r.mu.Unlock()

	go r.drive(context.WithoutCancel(ctx))
	return nil
}

func (r *Room) playerID(s Seat) string {
	if s.IsHuman {
		return string(s.PeerID)
	}
	return s.Color.String()
}

// Place applies a MOVE from peer. Requests that are not legal for the
// current turn are rejected without touching the state.
func (r *Room) Place(ctx context.Context, peer message.PeerID, m message.MovePayload) error {
	r.mu.Lock()
	if err := r.checkPeerTurn(peer, m.PlayerID); err != nil {
		r.mu.Unlock()
		return err
	}

	before := len(r.game.History)
	if _, err := r.game.Place(m.PieceID, m.Shape, m.Position); err != nil {
		r.mu.Unlock()
		return err
	}
	for _, record := range r.game.History[before:] {
		r.recordMove(ctx, record)
	}
	r.afterChangeLocked(ctx)
	r.mu.Unlock()

	r.drive(ctx)
	return nil
}

// Pass applies a PASS from peer.
func (r *Room) Pass(ctx context.Context, peer message.PeerID, m message.PassPayload) error {
	r.mu.Lock()
	if err := r.checkPeerTurn(peer, m.PlayerID); err != nil {
		r.mu.Unlock()
		return err
	}

	if err := r.passLocked(ctx, r.game.CurrentPlayerIndex); err != nil {
		r.mu.Unlock()
		return err
	}
	r.mu.Unlock()

	r.drive(ctx)
	return nil
}

func (r *Room) checkPeerTurn(peer message.PeerID, playerID string) error {
	if r.game == nil {
		return chess.ErrNotPlaying
	}
	if _, c := r.seatOf(peer); !c {
		return fmt.Errorf("%w: %s", ErrNotSeated, peer)
	}
	if playerID == "" {
		playerID = string(peer)
	}
	if playerID != string(peer) {
		return fmt.Errorf("%w: %s speaks for %s", chess.ErrNotYourTurn, peer, playerID)
	}
	return r.game.CheckTurn(playerID)
}

// passLocked passes seat i, in turn or not, and publishes the result.
func (r *Room) passLocked(ctx context.Context, i int) error {
	before := len(r.game.History)
	if err := r.game.PassPlayer(i); err != nil {
		return err
	}
	for _, record := range r.game.History[before:] {
		r.recordMove(ctx, record)
	}
	r.afterChangeLocked(ctx)
	return nil
}

// drive plays computer turns until a human is to move or the game ends.
func (r *Room) drive(ctx context.Context) {
	r.driveMu.Lock()
	defer r.driveMu.Unlock()

	for {
		r.mu.Lock()
		if r.game == nil || r.game.Status != chess.Playing || r.game.CurrentPlayer().IsHuman {
			r.mu.Unlock()
			return
		}
		snapshot := r.game.DeepCopy()
		r.mu.Unlock()

		move, ok := r.opts.Mover.SelectMove(ctx, r.GameUid, snapshot)

		r.mu.Lock()
		if r.game.TurnNumber != snapshot.TurnNumber || r.game.Status != chess.Playing {
			r.mu.Unlock()
			continue
		}
		r.playComputer(ctx, move, ok)
		r.mu.Unlock()
	}
}

func (r *Room) playComputer(ctx context.Context, move chess.Placement, ok bool) {
	before := len(r.game.History)
	if ok {
		if _, err := r.game.Place(move.Piece.ID, move.Shape, move.Position); err != nil {
			r.Errorf("computer %s chose a rejected move: %v", r.game.CurrentPlayer().Color, err)
			ok = false
		}
	}
	if !ok {
		if err := r.game.Pass(); err != nil {
			r.Error(err)
			return
		}
	}

	for _, record := range r.game.History[before:] {
		r.recordMove(ctx, record)
	}
	r.afterChangeLocked(ctx)
}

func (r *Room) recordMove(ctx context.Context, record chess.MoveRecord) {
	if r.opts.Recorder == nil {
		return
	}
	if err := r.opts.Recorder.RecordMove(ctx, r.GameUid, r.game, record); err != nil {
		r.Errorf("record move: %v", err)
	}
}

func (r *Room) afterChangeLocked(ctx context.Context) {
	r.broadcast(message.Update, message.NewUpdatePayload(r.game))
	if r.game.Status == chess.Finished && !r.finished {
		r.finished = true
		r.finishLocked(ctx)
	}
}

func (r *Room) finishLocked(ctx context.Context) {
	r.broadcast(message.GameOver, message.NewGameOverPayload(r.game))
	if r.opts.OnFinish != nil {
		r.opts.OnFinish()
	}

	winner, _ := r.game.Winner()
	r.Infof("game %s finished, winner %s with %d", r.GameUid, winner.Color, winner.Score)

	if r.opts.Recorder != nil {
		if err := r.opts.Recorder.RecordEnd(ctx, r.GameUid, r.game); err != nil {
			r.Errorf("record end: %v", err)
		}
	}

	if r.opts.Stats == nil {
		return
	}

	humans := 0
	for _, s := range r.seats {
		if s.IsHuman {
			humans++
		}
	}
	for i, s := range r.seats {
		if !s.IsHuman || s.Name == "" {
			continue
		}
		result := stats.GameResult{
			IsWin:         winner.Seat == i,
			IsPerfect:     len(r.game.Players[i].Pieces) == 0,
			IsMultiplayer: humans > 1,
		}
		if _, unlocked, err := r.opts.Stats.Record(ctx, s.Name, result); err != nil {
			r.Errorf("record stats for %s: %v", s.Name, err)
		} else {
			for _, a := range unlocked {
				r.Infof("%s unlocked %s", s.Name, a.ID)
			}
		}
	}
}

func (r *Room) broadcast(t message.Type, payload any) {
	data, err := message.Encode(t, payload)
	if err != nil {
		r.Error(err)
		return
	}
	r.out.Broadcast(data)
}

// Send delivers one message to a single peer.
func (r *Room) Send(peer message.PeerID, t message.Type, payload any) {
	data, err := message.Encode(t, payload)
	if err != nil {
		r.Error(err)
		return
	}
	r.out.SendTo(peer, data)
}
