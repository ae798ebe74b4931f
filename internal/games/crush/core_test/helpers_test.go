package core_test

import (
	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

// cycleRand returns a fixed sequence, reduced modulo n.
type cycleRand struct {
	vals []int
	i    int
}

func newCycleRand(vals ...int) *cycleRand {
	return &cycleRand{vals: vals}
}

func (r *cycleRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// patternGrid fills a board so that no row or column holds two equal
// neighbors: cell (r, c) gets palette[(c+2r) % 6].
func patternGrid(width int) *core.Grid {
	palette := core.DefaultPalette()
	g := core.NewGrid(width)
	for r := 0; r < width; r++ {
		for c := 0; c < width; c++ {
			g.Cells[g.Index(r, c)] = core.Colored(palette[(c+2*r)%len(palette)])
		}
	}
	return g
}

func red() core.Token    { return core.Colored(core.ColorRed) }
func yellow() core.Token { return core.Colored(core.ColorYellow) }
func green() core.Token  { return core.Colored(core.ColorGreen) }
func blue() core.Token   { return core.Colored(core.ColorBlue) }

func loadSession(g *core.Grid, rng core.Rand) *core.Session {
	s := core.NewSession(core.DefaultRules(), rng)
	s.Load(g)
	return s
}
