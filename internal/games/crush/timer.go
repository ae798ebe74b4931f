package crush

import "math"

// Ticker fires once every period simulation ticks. Timers are driven by
// Game.Step, so they stop while the game is paused.
type Ticker struct {
	period  int
	elapsed int
}

// TicksFor converts seconds to simulation ticks, never less than one.
func TicksFor(seconds float64, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int(math.Round(seconds * float64(tickRate)))
	return max(n, 1)
}

// NewTicker creates a ticker firing every seconds at the given tick rate.
func NewTicker(seconds float64, tickRate int) Ticker {
	return Ticker{period: TicksFor(seconds, tickRate)}
}

// Advance counts one tick and reports whether the ticker fired.
func (t *Ticker) Advance() bool {
	t.elapsed++
	if t.elapsed < t.period {
		return false
	}
	t.elapsed = 0
	return true
}

// SetPeriod changes the interval. Ticks already counted are kept, so a
// shorter period can fire on the next Advance.
func (t *Ticker) SetPeriod(seconds float64, tickRate int) {
	t.period = TicksFor(seconds, tickRate)
}

// Period returns the interval in ticks.
func (t *Ticker) Period() int {
	return t.period
}

// Remaining returns the ticks left until the next fire.
func (t *Ticker) Remaining() int {
	return max(t.period-t.elapsed, 0)
}

// Countdown is the blitz clock: it runs down once and stays expired.
type Countdown struct {
	total int
	left  int
}

// NewCountdown creates a clock of the given length in seconds.
func NewCountdown(seconds int, tickRate int) Countdown {
	n := TicksFor(float64(seconds), tickRate)
	return Countdown{total: n, left: n}
}

// Advance counts one tick and reports whether the clock just ran out.
func (c *Countdown) Advance() bool {
	if c.left <= 0 {
		return false
	}
	c.left--
	return c.left == 0
}

// Expired reports whether the clock reached zero.
func (c *Countdown) Expired() bool {
	return c.left <= 0
}

// Left returns the remaining ticks.
func (c *Countdown) Left() int {
	return c.left
}

// Elapsed returns the ticks already consumed.
func (c *Countdown) Elapsed() int {
	return c.total - c.left
}
