package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
)

var ErrBadCommand = errors.New("bad command")

type CommandKind string

const (
	PlaceCommand CommandKind = "place"
	PassCommand  CommandKind = "pass"
	HandCommand  CommandKind = "hand"
	BoardCommand CommandKind = "board"
	QuitCommand  CommandKind = "quit"
)

const usage = `commands:
  place <piece> <rotation 0-3> <flip 0|1> <x> <y>
  pass
  hand
  board
  quit`

type Command struct {
	Kind     CommandKind
	PieceID  chess.PieceID
	Rotation int
	Flipped  bool
	Position chess.Coordinate
}

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrBadCommand)
	}

	switch kind := CommandKind(fields[0]); kind {
	case PassCommand, HandCommand, BoardCommand, QuitCommand:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrBadCommand, kind)
		}
		return Command{Kind: kind}, nil
	case PlaceCommand:
		return parsePlace(fields[1:])
	default:
		return Command{}, fmt.Errorf("%w: unknown %q", ErrBadCommand, fields[0])
	}
}

func parsePlace(args []string) (Command, error) {
	if len(args) != 5 {
		return Command{}, fmt.Errorf("%w: place wants 5 arguments, got %d", ErrBadCommand, len(args))
	}

	nums := make([]int, 4)
	for i, arg := range args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q is not a number", ErrBadCommand, arg)
		}
		nums[i] = n
	}

	if nums[0] < 0 || nums[0] > 3 {
		return Command{}, fmt.Errorf("%w: rotation %d out of range", ErrBadCommand, nums[0])
	}
	if nums[1] != 0 && nums[1] != 1 {
		return Command{}, fmt.Errorf("%w: flip must be 0 or 1", ErrBadCommand)
	}

	return Command{
		Kind:     PlaceCommand,
		PieceID:  chess.PieceID(args[0]),
		Rotation: nums[0],
		Flipped:  nums[1] == 1,
		Position: chess.NewCoordinate(nums[2], nums[3]),
	}, nil
}

// Shape resolves the oriented grid for a place command against a hand.
func (c Command) Shape(p chess.Player) (chess.Shape, error) {
	piece, ok := p.Piece(c.PieceID)
	if !ok {
		return nil, fmt.Errorf("%w: no piece %q in hand", ErrBadCommand, c.PieceID)
	}
	return piece.Shape.Transform(c.Rotation, c.Flipped), nil
}
