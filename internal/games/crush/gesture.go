package crush

import (
	platformcore "github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

// SwapRequest asks the session to exchange two cells.
type SwapRequest struct {
	From int
	To   int
}

// GestureKind tells what a finished pointer gesture amounts to.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureSwap             // Drag-drop or swipe onto a neighbor
	GestureTap              // Press and release on the same cell
)

// GestureResult is the outcome of a released pointer gesture.
type GestureResult struct {
	Kind GestureKind
	Swap SwapRequest // Set for GestureSwap
	Cell int         // Set for GestureTap
}

// Swipe returns the neighbor of index in the direction of the drag vector
// (dx, dy). The dominant axis wins; ties go to the vertical axis, so a zero
// vector yields nothing. Moves off the board edge yield nothing.
func Swipe(width, index, dx, dy int) (target int, ok bool) {
	col := index % width
	size := width * width

	if platformcore.Abs(dx) > platformcore.Abs(dy) {
		switch {
		case dx > 0 && col < width-1:
			return index + 1, true
		case dx < 0 && col > 0:
			return index - 1, true
		}
		return 0, false
	}

	switch {
	case dy > 0 && index+width < size:
		return index + width, true
	case dy < 0 && index-width >= 0:
		return index - width, true
	}
	return 0, false
}

// Gesture turns pointer press/release pairs into swap requests.
//
// A release on the pressed cell is a tap. A release on an orthogonal
// neighbor is a drag-drop swap. Any other release, on a distant cell or
// off the board, is read as a swipe from the pressed cell along the drag
// vector.
type Gesture struct {
	width  int
	origin int // Pressed cell, -1 when idle
	startX int
	startY int
}

// NewGesture creates an idle gesture tracker for a board of the given width.
func NewGesture(width int) *Gesture {
	return &Gesture{width: width, origin: -1}
}

// Active reports whether a press is waiting for its release.
func (g *Gesture) Active() bool {
	return g.origin >= 0
}

// Origin returns the pressed cell, or -1.
func (g *Gesture) Origin() int {
	return g.origin
}

// Cancel drops a pending press.
func (g *Gesture) Cancel() {
	g.origin = -1
}

// Press starts a gesture at screen position (x, y) over cell. A press off
// the board (cell < 0) cancels any pending gesture.
func (g *Gesture) Press(cell, x, y int) {
	if cell < 0 || cell >= g.width*g.width {
		g.origin = -1
		return
	}
	g.origin = cell
	g.startX = x
	g.startY = y
}

// Release ends the gesture at screen position (x, y) over cell (-1 when off
// the board). cellW and cellH are the on-screen size of one board cell and
// scale the drag vector so both axes are compared in board units.
func (g *Gesture) Release(cell, x, y, cellW, cellH int) GestureResult {
	origin := g.origin
	g.origin = -1
	if origin < 0 {
		return GestureResult{}
	}

	if cell == origin {
		return GestureResult{Kind: GestureTap, Cell: origin}
	}
	if cell >= 0 && core.Adjacent(g.width, origin, cell) {
		return GestureResult{Kind: GestureSwap, Swap: SwapRequest{From: origin, To: cell}}
	}

	dx := (x - g.startX) * max(cellH, 1)
	dy := (y - g.startY) * max(cellW, 1)
	target, ok := Swipe(g.width, origin, dx, dy)
	if !ok {
		return GestureResult{}
	}
	return GestureResult{Kind: GestureSwap, Swap: SwapRequest{From: origin, To: target}}
}
