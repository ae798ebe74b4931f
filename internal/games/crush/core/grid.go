package core

// Grid is a square board of tokens stored in row-major order:
// index = row*Width + col.
type Grid struct {
	Width int
	Cells []Token
}

// NewGrid creates a width x width grid with every cell Empty.
func NewGrid(width int) *Grid {
	return &Grid{
		Width: width,
		Cells: make([]Token, width*width),
	}
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return len(g.Cells)
}

// Index converts a row/column pair to a cell index.
func (g *Grid) Index(row, col int) int {
	return row*g.Width + col
}

// Row returns the row of a cell index.
func (g *Grid) Row(i int) int {
	return i / g.Width
}

// Col returns the column of a cell index.
func (g *Grid) Col(i int) int {
	return i % g.Width
}

// InBounds reports whether i addresses a cell of this grid.
func (g *Grid) InBounds(i int) bool {
	return i >= 0 && i < len(g.Cells)
}

// IsAdjacent reports whether two cells are horizontal neighbors in the
// same row or vertical neighbors. Diagonals and i == j are never adjacent.
// Indices are not range-checked.
func (g *Grid) IsAdjacent(i, j int) bool {
	return Adjacent(g.Width, i, j)
}

// Adjacent is IsAdjacent for a board of the given width.
func Adjacent(width, i, j int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	if d == 1 {
		return i >= 0 && j >= 0 && i/width == j/width
	}
	return d == width
}

// Get returns the token at i, or Empty when i is out of range.
func (g *Grid) Get(i int) Token {
	if !g.InBounds(i) {
		return Empty
	}
	return g.Cells[i]
}

// Set stores a token at i. Out-of-range writes are ignored.
func (g *Grid) Set(i int, t Token) {
	if g.InBounds(i) {
		g.Cells[i] = t
	}
}

// Swap exchanges the tokens of two cells. It performs no validation;
// both indices must be in range.
func (g *Grid) Swap(i, j int) {
	g.Cells[i], g.Cells[j] = g.Cells[j], g.Cells[i]
}

// Clear sets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = Empty
	}
}

// Full reports whether no cell is Empty.
func (g *Grid) Full() bool {
	for _, t := range g.Cells {
		if t == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold the given token.
func (g *Grid) Count(t Token) int {
	n := 0
	for _, c := range g.Cells {
		if c == t {
			n++
		}
	}
	return n
}

// BombIndex returns the first cell holding a Bomb, or -1.
func (g *Grid) BombIndex() int {
	for i, t := range g.Cells {
		if t == Bomb {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Token, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Width: g.Width, Cells: cells}
}

// Equal reports whether two grids have the same width and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || len(g.Cells) != len(other.Cells) {
		return false
	}
	for i, t := range g.Cells {
		if other.Cells[i] != t {
			return false
		}
	}
	return true
}
