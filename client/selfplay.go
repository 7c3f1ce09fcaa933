package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/model"
	"github.com/HuXin0817/connect-corners/pkg/stats"
)

// SelfPlay runs games between four computers and counts wins per color,
// advancing bar once per game.
func SelfPlay(games int, rng *rand.Rand, bar *model.Bar) (map[chess.Color]int, error) {
	wins := make(map[chess.Color]int)
	defer bar.Close()

	for range games {
		g, err := playComputers(rng)
		if err != nil {
			return wins, err
		}
		if winner, ok := g.Winner(); ok {
			wins[winner.Color]++
			bar.Describe(fmt.Sprintf("last winner %s with %d", winner.Color, winner.Score))
		}
		bar.Add(1)
	}
	return wins, nil
}

func playComputers(rng *rand.Rand) (*chess.Game, error) {
	var seats []chess.Seat
	for _, color := range stats.ComputerColors(chess.NoColor, chess.SeatCount, rng) {
		seats = append(seats, chess.Seat{ID: color.String(), Color: color})
	}

	g, err := chess.NewGame(seats...)
	if err != nil {
		return nil, err
	}
	if err = g.Start(); err != nil {
		return nil, err
	}

	for g.Status == chess.Playing {
		if err = computerTurn(g, rng); err != nil {
			return g, err
		}
	}
	return g, nil
}

func printWins(out io.Writer, render Renderer, wins map[chess.Color]int, games int) {
	fmt.Fprintln(out)
	for _, color := range stats.BaseColors {
		fmt.Fprintf(out, "%-9s %d/%d\n", render.paint(color, color.String()), wins[color], games)
	}
}
