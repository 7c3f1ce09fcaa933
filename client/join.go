package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

var errGameOver = errors.New("game over")

// Guest mirrors the host's state. It never applies moves itself; every
// UPDATE replaces the local game.
type Guest struct {
	PeerID message.PeerID
	Color  chess.Color
	Game   *chess.Game

	send   func(message.Type, any) error
	out    io.Writer
	render Renderer
}

func NewGuest(send func(message.Type, any) error, out io.Writer, render Renderer) *Guest {
	return &Guest{send: send, out: out, render: render}
}

func RoomURL(addr, room string) string {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/rooms/" + room + "/ws"}
	return u.String()
}

// Join connects to a room, claims a seat and plays from in until the round
// ends or in runs out.
func Join(ctx context.Context, addr, room, name string, color chess.Color, in io.Reader, out io.Writer, render Renderer) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, RoomURL(addr, room), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	guest := NewGuest(func(t message.Type, payload any) error {
		data, err := message.Encode(t, payload)
		if err != nil {
			return err
		}
		return conn.WriteMessage(websocket.TextMessage, data)
	}, out, render)

	if err = guest.send(message.Join, message.JoinPayload{Name: name, Color: color}); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	incoming := make(chan message.Message)
	readErr := make(chan error, 1)
	go readMessages(conn, incoming, readErr, done)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err = <-readErr:
			return err
		case m := <-incoming:
			if err = guest.Handle(m); errors.Is(err, errGameOver) {
				return nil
			} else if err != nil {
				return err
			}
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			quit, err := guest.Command(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

type messageReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

// readMessages decodes host messages into incoming until the connection
// fails or done is closed.
func readMessages(conn messageReader, incoming chan<- message.Message, readErr chan<- error, done <-chan struct{}) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}
		m, err := message.Decode(data)
		if err != nil {
			logx.Errorf("drop message from host: %v", err)
			continue
		}

		select {
		case incoming <- m:
		case <-done:
			return
		}
	}
}

// Handle applies one message from the host.
func (g *Guest) Handle(m message.Message) error {
	switch m.Type {
	case message.Welcome:
		var w message.WelcomePayload
		if err := m.Unmarshal(&w); err != nil {
			return err
		}
		g.PeerID, g.Color = w.PeerID, w.Color
		fmt.Fprintf(g.out, "seated as %s at seat %d, peer id %s\n", g.render.paint(w.Color, w.Color.String()), w.Seat, w.PeerID)
	case message.StartGame:
		fmt.Fprintln(g.out, "game started")
	case message.Update:
		var u message.UpdatePayload
		if err := m.Unmarshal(&u); err != nil {
			return err
		}
		g.Game = u.Game()
		g.render.Board(g.out, g.Game.Board)
		g.render.Scores(g.out, g.Game)
		if g.myTurn() {
			fmt.Fprintln(g.out, "your move")
		}
	case message.GameOver:
		var over message.GameOverPayload
		if err := m.Unmarshal(&over); err != nil {
			return err
		}
		if g.Game != nil {
			g.Game.Players = over.Players
			g.Game.Status = chess.Finished
			g.render.Standings(g.out, g.Game)
		}
		return errGameOver
	case message.Error:
		var e message.ErrorPayload
		if err := m.Unmarshal(&e); err != nil {
			return err
		}
		fmt.Fprintf(g.out, "host: %s\n", e.Reason)
	}
	return nil
}

// Command turns one typed line into a MOVE or PASS for the host.
func (g *Guest) Command(line string) (quit bool, err error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		fmt.Fprintln(g.out, err)
		fmt.Fprintln(g.out, usage)
		return false, nil
	}
	if cmd.Kind == QuitCommand {
		return true, nil
	}
	if g.Game == nil {
		fmt.Fprintln(g.out, "the game has not started")
		return false, nil
	}

	switch cmd.Kind {
	case HandCommand:
		if p := g.me(); p != nil {
			g.render.Hand(g.out, *p)
		}
	case BoardCommand:
		g.render.Board(g.out, g.Game.Board)
	case PassCommand:
		if !g.myTurn() {
			fmt.Fprintln(g.out, "not your turn")
			return false, nil
		}
		return false, g.send(message.Pass, message.PassPayload{PlayerID: string(g.PeerID)})
	case PlaceCommand:
		if !g.myTurn() {
			fmt.Fprintln(g.out, "not your turn")
			return false, nil
		}
		shape, err := cmd.Shape(*g.me())
		if err != nil {
			fmt.Fprintln(g.out, err)
			return false, nil
		}
		return false, g.send(message.Move, message.MovePayload{
			PlayerID: string(g.PeerID),
			PieceID:  cmd.PieceID,
			Shape:    shape,
			Position: cmd.Position,
		})
	}
	return false, nil
}

func (g *Guest) me() *chess.Player {
	if g.Game == nil {
		return nil
	}
	for i := range g.Game.Players {
		if g.Game.Players[i].ID == string(g.PeerID) {
			return &g.Game.Players[i]
		}
	}
	return nil
}

func (g *Guest) myTurn() bool {
	return g.Game != nil && g.Game.Status == chess.Playing && g.Game.CheckTurn(string(g.PeerID)) == nil
}
