package crush

import "testing"

func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		index  int
		dx, dy int
		want   int
		wantOK bool
	}{
		{"right", 0, 5, 1, 1, true},
		{"left from column 0", 0, -5, 0, 0, false},
		{"left", 9, -3, 2, 8, true},
		{"down", 0, 1, 4, 8, true},
		{"up from row 0", 3, 0, -4, 0, false},
		{"up", 63, 0, -1, 55, true},
		{"right from last column", 63, 7, 0, 0, false},
		{"down from last row", 60, 0, 2, 0, false},
		{"tie goes vertical", 10, 3, 3, 18, true},
		{"zero vector", 10, 0, 0, 0, false},
		{"right edge does not wrap", 7, 2, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Swipe(8, tt.index, tt.dx, tt.dy)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Swipe(8, %d, %d, %d) = %d, %v; expected %d, %v",
					tt.index, tt.dx, tt.dy, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGestureTap(t *testing.T) {
	g := NewGesture(8)
	g.Press(12, 40, 10)
	if !g.Active() || g.Origin() != 12 {
		t.Fatalf("after Press: active=%v origin=%d, expected true 12", g.Active(), g.Origin())
	}

	res := g.Release(12, 41, 10, 4, 2)
	if res.Kind != GestureTap || res.Cell != 12 {
		t.Errorf("Release on same cell = %+v, expected tap on 12", res)
	}
	if g.Active() {
		t.Error("gesture should be idle after release")
	}
}

func TestGestureDragDrop(t *testing.T) {
	g := NewGesture(8)
	g.Press(12, 40, 10)

	res := g.Release(20, 40, 12, 4, 2)
	if res.Kind != GestureSwap {
		t.Fatalf("Release on neighbor = %+v, expected swap", res)
	}
	if res.Swap != (SwapRequest{From: 12, To: 20}) {
		t.Errorf("swap = %+v, expected 12 -> 20", res.Swap)
	}
}

func TestGestureSwipeOnDistantRelease(t *testing.T) {
	g := NewGesture(8)

	// Diagonal neighbor: the longer screen axis wins once scaled to cells.
	// dx = 4 chars (one cell), dy = 6 lines (three cells).
	g.Press(12, 40, 10)
	res := g.Release(29, 44, 16, 4, 2)
	if res.Kind != GestureSwap || res.Swap != (SwapRequest{From: 12, To: 20}) {
		t.Errorf("diagonal release = %+v, expected swap 12 -> 20", res)
	}

	// Off the board to the left
	g.Press(12, 40, 10)
	res = g.Release(-1, 2, 10, 4, 2)
	if res.Kind != GestureSwap || res.Swap != (SwapRequest{From: 12, To: 11}) {
		t.Errorf("off-board release = %+v, expected swap 12 -> 11", res)
	}

	// Off the board past the edge of column 0
	g.Press(8, 24, 10)
	res = g.Release(-1, 2, 10, 4, 2)
	if res.Kind != GestureNone {
		t.Errorf("swipe past the edge = %+v, expected none", res)
	}
}

func TestGestureIgnoresUnpairedEvents(t *testing.T) {
	g := NewGesture(8)

	if res := g.Release(5, 0, 0, 4, 2); res.Kind != GestureNone {
		t.Errorf("release without press = %+v, expected none", res)
	}

	g.Press(-1, 0, 0)
	if g.Active() {
		t.Error("press off the board should not start a gesture")
	}

	g.Press(5, 0, 0)
	g.Cancel()
	if res := g.Release(6, 4, 0, 4, 2); res.Kind != GestureNone {
		t.Errorf("release after cancel = %+v, expected none", res)
	}
}
