package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned by ParseColor for any token that is not one of
// red, green or blue.
var ErrUnknownColor = errors.New("unknown color")

// Color is one of the three cube colors a draw can contain.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// ParseColor matches token case-insensitively against the color names.
func ParseColor(token string) (Color, error) {
	switch strings.ToLower(token) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, token)
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}
