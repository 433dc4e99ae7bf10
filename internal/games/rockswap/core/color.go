// Package core provides the board resolution engine for the RockSwap puzzle.
// This package is UI-agnostic and deterministic.
package core

import "strings"

// Color is a palette index for tile colors. It is distinct from the terminal
// color type; the presentation layer owns that mapping.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorBlue:
		return 'B'
	case ColorMagenta:
		return 'M'
	case ColorCyan:
		return 'C'
	case ColorOrange:
		return 'O'
	case ColorWhite:
		return 'W'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "yellow", "y":
		return ColorYellow, true
	case "blue", "b":
		return ColorBlue, true
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "orange", "o":
		return ColorOrange, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorRed, false
	}
}
