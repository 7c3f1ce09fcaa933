package chess

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownColor = errors.New("unknown color")

// Color identifies a player; the zero value marks an empty cell.
type Color int8

const (
	NoColor Color = iota
	Blue
	Yellow
	Red
	Green
	LightBlue
	Pink
	Orange
	Purple
)

var colorNames = [...]string{
	NoColor:   "",
	Blue:      "BLUE",
	Yellow:    "YELLOW",
	Red:       "RED",
	Green:     "GREEN",
	LightBlue: "LIGHTBLUE",
	Pink:      "PINK",
	Orange:    "ORANGE",
	Purple:    "PURPLE",
}

var AllColors = []Color{Blue, Yellow, Red, Green, LightBlue, Pink, Orange, Purple}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", c)
	}
	return colorNames[c]
}

func (c Color) Valid() bool {
	return c > NoColor && int(c) < len(colorNames)
}

func ParseColor(s string) (Color, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, c := range AllColors {
		if colorNames[c] == s {
			return c, nil
		}
	}
	return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = NoColor
		return nil
	}

	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
