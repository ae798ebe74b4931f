package core

import (
	"fmt"
	"strings"
)

// ParseGrid builds a grid from one string per row. Each character is a
// color letter (R, Y, G, B, P, O, C, W; case-insensitive), '.' for Empty or
// '*' for a Bomb. Spaces are ignored so rows can be written "R R R B".
func ParseGrid(rows ...string) (*Grid, error) {
	width := len(rows)
	if width == 0 {
		return nil, fmt.Errorf("empty board")
	}

	g := NewGrid(width)
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != width {
			return nil, fmt.Errorf("row %d: got %d cells, want %d", r, len(line), width)
		}
		for c, ch := range line {
			t, err := parseToken(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			g.Cells[g.Index(r, c)] = t
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid for fixtures; it panics on malformed input.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func parseToken(ch rune) (Token, error) {
	switch ch {
	case '.':
		return Empty, nil
	case '*':
		return Bomb, nil
	}
	c, ok := ParseColor(string(ch))
	if !ok {
		return Empty, fmt.Errorf("unknown token %q", ch)
	}
	return Colored(c), nil
}

// Rows returns the board as one string per row, the inverse of ParseGrid.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.Width)
	var sb strings.Builder
	for r := 0; r < g.Width; r++ {
		sb.Reset()
		for c := 0; c < g.Width; c++ {
			sb.WriteRune(g.Cells[g.Index(r, c)].Char())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String renders the board as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
