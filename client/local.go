package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/HuXin0817/connect-corners/pkg/assess"
	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/zeromicro/go-zero/core/logx"
)

const humanID = "you"

// LocalGame is one human against three computers on the terminal.
type LocalGame struct {
	game   *chess.Game
	rng    *rand.Rand
	in     *bufio.Scanner
	out    io.Writer
	render Renderer
}

func NewLocalGame(human chess.Color, rng *rand.Rand, in io.Reader, out io.Writer, render Renderer) (*LocalGame, error) {
	seats := []chess.Seat{{ID: humanID, Name: *NameConf, Color: human, IsHuman: true}}
	for _, color := range stats.ComputerColors(human, chess.SeatCount-1, rng) {
		seats = append(seats, chess.Seat{ID: color.String(), Color: color})
	}

	g, err := chess.NewGame(seats...)
	if err != nil {
		return nil, err
	}
	if err = g.Start(); err != nil {
		return nil, err
	}

	return &LocalGame{
		game:   g,
		rng:    rng,
		in:     bufio.NewScanner(in),
		out:    out,
		render: render,
	}, nil
}

// Run plays until the round ends or the human quits. End of input counts as
// quitting.
func (l *LocalGame) Run() (*chess.Game, error) {
	l.show()
	for l.game.Status == chess.Playing {
		p := l.game.CurrentPlayer()
		if !p.IsHuman {
			if err := computerTurn(l.game, l.rng); err != nil {
				return l.game, err
			}
			continue
		}

		quit, err := l.humanTurn()
		if err != nil {
			return l.game, err
		}
		if quit {
			return l.game, nil
		}
	}

	l.show()
	l.render.Standings(l.out, l.game)
	return l.game, nil
}

func (l *LocalGame) humanTurn() (quit bool, err error) {
	fmt.Fprintf(l.out, "%s to move> ", l.game.CurrentPlayer().Color)
	if !l.in.Scan() {
		return true, l.in.Err()
	}

	cmd, err := ParseCommand(l.in.Text())
	if err != nil {
		fmt.Fprintln(l.out, err)
		fmt.Fprintln(l.out, usage)
		return false, nil
	}

	switch cmd.Kind {
	case QuitCommand:
		return true, nil
	case HandCommand:
		l.render.Hand(l.out, *l.game.CurrentPlayer())
	case BoardCommand:
		l.show()
	case PassCommand:
		if err = l.game.Pass(); err != nil {
			return false, err
		}
		l.show()
	case PlaceCommand:
		if _, err = l.game.PlaceOriented(cmd.PieceID, cmd.Rotation, cmd.Flipped, cmd.Position); err != nil {
			fmt.Fprintln(l.out, err)
			return false, nil
		}
		l.show()
	}
	return false, nil
}

func (l *LocalGame) show() {
	l.render.Board(l.out, l.game.Board)
	l.render.Scores(l.out, l.game)
}

// computerTurn plays the greedy move for the current player or passes.
func computerTurn(g *chess.Game, rng *rand.Rand) error {
	p := g.CurrentPlayer()
	if p == nil {
		return errors.New("no current player")
	}

	move, ok := assess.SelectPlayerMove(g.Board, *p, rng)
	if !ok {
		return g.Pass()
	}

	if _, err := g.Place(move.Piece.ID, move.Shape, move.Position); err != nil {
		logx.Errorf("%s rejected its own move %s at %s: %v", p.Color, move.Piece.ID, move.Position, err)
		return g.Pass()
	}
	return nil
}
