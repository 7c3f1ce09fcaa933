package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

type Renderer struct {
	au aurora.Aurora
}

func NewRenderer(colors bool) Renderer {
	return Renderer{au: aurora.NewAurora(colors)}
}

func (r Renderer) paint(c chess.Color, s string) string {
	switch c {
	case chess.Blue:
		return r.au.Blue(s).String()
	case chess.Yellow:
		return r.au.Yellow(s).String()
	case chess.Red:
		return r.au.Red(s).String()
	case chess.Green:
		return r.au.Green(s).String()
	case chess.LightBlue:
		return r.au.Cyan(s).String()
	case chess.Pink:
		return r.au.Magenta(s).String()
	case chess.Orange:
		return r.au.Index(208, s).String()
	case chess.Purple:
		return r.au.Index(93, s).String()
	}
	return s
}

func (r Renderer) Board(w io.Writer, b chess.Board) {
	var sb strings.Builder
	sb.WriteString("   ")
	for x := range b.BoardSize {
		sb.WriteString(fmt.Sprintf("%2d", x))
	}
	sb.WriteString("\n")

	for y := range b.BoardSize {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := range b.BoardSize {
			switch owner := b.Owner(x, y); {
			case owner != chess.NoColor:
				sb.WriteString(" " + r.paint(owner, "#"))
			case chess.IsBonusSquare(chess.Coordinate{X: x, Y: y}):
				sb.WriteString(" +")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(w, sb.String())
}

func (r Renderer) Scores(w io.Writer, g *chess.Game) {
	for i, p := range g.Players {
		marker := " "
		if i == g.CurrentPlayerIndex && g.Status == chess.Playing {
			marker = ">"
		}
		state := ""
		if p.HasPassed {
			state = " (passed)"
		}
		fmt.Fprintf(w, "%s %-9s %3d points, %2d pieces left%s\n", marker, r.paint(p.Color, p.Color.String()), chess.Score(p), len(p.Pieces), state)
	}
}

func (r Renderer) Hand(w io.Writer, p chess.Player) {
	for _, piece := range p.Pieces {
		locked := ""
		if piece.Special && !p.CanUseSpecial() {
			locked = fmt.Sprintf(" locked until %d points", chess.SpecialPieceThreshold)
		}
		fmt.Fprintf(w, "%-8s %d cells  %s%s\n", piece.ID, piece.Value, piece.Shape, locked)
	}
}

func (r Renderer) Standings(w io.Writer, g *chess.Game) {
	fmt.Fprintln(w, "Final standings:")
	for i, s := range g.Standings() {
		perfect := ""
		if s.Perfect {
			perfect = " perfect"
		}
		fmt.Fprintf(w, "%d. %s %d points%s\n", i+1, r.paint(s.Color, s.Color.String()), s.Score, perfect)
	}
}
