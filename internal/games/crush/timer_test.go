package crush

import "testing"

func TestTicksFor(t *testing.T) {
	tests := []struct {
		seconds  float64
		rate     int
		expected int
	}{
		{30, 60, 1800},
		{1, 60, 60},
		{0.25, 60, 15},
		{0, 60, 1},
		{1, 0, 60},
	}

	for _, tt := range tests {
		if got := TicksFor(tt.seconds, tt.rate); got != tt.expected {
			t.Errorf("TicksFor(%v, %d) = %d, expected %d", tt.seconds, tt.rate, got, tt.expected)
		}
	}
}

func TestTickerFiresEveryPeriod(t *testing.T) {
	tk := NewTicker(1, 5)

	var fired []int
	for i := 1; i <= 12; i++ {
		if tk.Advance() {
			fired = append(fired, i)
		}
	}

	if len(fired) != 2 || fired[0] != 5 || fired[1] != 10 {
		t.Errorf("fired at %v, expected [5 10]", fired)
	}
	if tk.Remaining() != 3 {
		t.Errorf("Remaining() = %d, expected 3", tk.Remaining())
	}
}

func TestTickerShorterPeriod(t *testing.T) {
	tk := NewTicker(2, 5)
	for i := 0; i < 6; i++ {
		tk.Advance()
	}

	tk.SetPeriod(1, 5)
	if tk.Period() != 5 {
		t.Fatalf("Period() = %d, expected 5", tk.Period())
	}
	if !tk.Advance() {
		t.Error("ticker past its new period should fire on the next tick")
	}
}

func TestCountdown(t *testing.T) {
	c := NewCountdown(1, 3)
	if c.Expired() {
		t.Fatal("new countdown should not be expired")
	}

	results := []bool{c.Advance(), c.Advance(), c.Advance(), c.Advance()}
	expected := []bool{false, false, true, false}
	for i := range results {
		if results[i] != expected[i] {
			t.Errorf("Advance() #%d = %v, expected %v", i+1, results[i], expected[i])
		}
	}

	if !c.Expired() || c.Left() != 0 || c.Elapsed() != 3 {
		t.Errorf("after run-out: expired=%v left=%d elapsed=%d", c.Expired(), c.Left(), c.Elapsed())
	}
}
