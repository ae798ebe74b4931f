package core

import "strings"

// Color is a palette entry. Colors are numbered from 1 so that the zero
// Token stays Empty.
type Color uint8

const (
	ColorRed Color = iota + 1
	ColorYellow
	ColorGreen
	ColorBlue
	ColorPurple
	ColorOrange
	ColorCyan
	ColorWhite
	colorEnd // Sentinel for iteration
)

// MaxColors is the largest palette a board can use.
const MaxColors = int(colorEnd - 1)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns the single-letter form used by ASCII boards.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorYellow:
		return 'Y'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorCyan:
		return 'C'
	case ColorWhite:
		return 'W'
	default:
		return '?'
	}
}

// ParseColor converts a name or letter to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "yellow", "y":
		return ColorYellow, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "cyan", "c":
		return ColorCyan, true
	case "white", "w":
		return ColorWhite, true
	default:
		return 0, false
	}
}

// DefaultPalette returns the six classic candy colors.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue, ColorPurple, ColorOrange}
}

// Token is the content of one board cell: Empty, Bomb, or a colored candy.
type Token uint8

const (
	Empty Token = 0
	Bomb  Token = 0xFF
)

// Colored returns the token for a candy of the given color.
func Colored(c Color) Token {
	return Token(c)
}

// IsEmpty reports whether the cell holds no token.
func (t Token) IsEmpty() bool { return t == Empty }

// IsBomb reports whether the token is the bomb.
func (t Token) IsBomb() bool { return t == Bomb }

// IsColored reports whether the token is a candy that can form runs.
func (t Token) IsColored() bool {
	return t != Empty && t != Bomb
}

// Color returns the candy color. ok is false for Empty and Bomb.
func (t Token) Color() (c Color, ok bool) {
	if !t.IsColored() {
		return 0, false
	}
	return Color(t), true
}

// Char returns the ASCII board character: '.' for Empty, '*' for Bomb.
func (t Token) Char() rune {
	switch t {
	case Empty:
		return '.'
	case Bomb:
		return '*'
	default:
		return Color(t).Char()
	}
}

// String returns "blank", "bomb" or the color name.
func (t Token) String() string {
	switch t {
	case Empty:
		return "blank"
	case Bomb:
		return "bomb"
	default:
		return Color(t).String()
	}
}
