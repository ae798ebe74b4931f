package crush

import (
	"math/rand"

	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

// SimOptions controls a headless simulation.
type SimOptions struct {
	Rules  core.Rules
	Seed   int64
	Boards int
	Swaps  int // Swap attempts per board

	// BombEvery spawns a bomb every n swap attempts and pops it halfway to
	// the next spawn. 0 disables bombs.
	BombEvery int
}

// SimReport aggregates the outcome of a simulation.
type SimReport struct {
	Boards      int
	Attempts    int // Random swap attempts, including the ones off the board edge
	Swaps       int // Swaps the session applied
	Productive  int // Applied swaps that cleared at least one run
	Bombs       int
	TotalScore  int
	BestScore   int
	BestChain   int
	LongestRun  int
	Iterations  int // Cascade iterations, deals included
	Capped      int // Operations stopped by the cascade cap
	Unsettled   int // Settled boards on which a detector pass still found runs
	FinalBoards []string
}

// Simulate plays random swaps on fresh boards. Every board gets its own seed
// derived from opts.Seed, so a report is reproducible.
func Simulate(opts SimOptions) SimReport {
	var rep SimReport

	for b := 0; b < opts.Boards; b++ {
		rng := rand.New(rand.NewSource(opts.Seed + int64(b)))
		s := core.NewSession(opts.Rules, rng)
		rules := s.Rules()

		rep.track(s.Reset(), rules, s)
		rep.Boards++

		for k := 0; k < opts.Swaps; k++ {
			if opts.BombEvery > 0 {
				switch k % opts.BombEvery {
				case 0:
					s.SpawnBomb()
				case opts.BombEvery / 2:
					if cell := s.Grid().BombIndex(); cell >= 0 {
						d := s.TriggerBomb(cell)
						d.Merge(s.ResolveCascade())
						rep.Bombs++
						rep.track(d, rules, s)
						continue
					}
				}
			}

			rep.Attempts++
			i := rng.Intn(s.Grid().Size())
			dx, dy := randomDirection(rng)
			j, ok := Swipe(s.Width(), i, dx, dy)
			if !ok {
				continue
			}

			d := s.ApplySwap(i, j)
			if !d.Applied {
				continue
			}
			rep.Swaps++
			if d.Runs > 0 {
				rep.Productive++
			}
			rep.track(d, rules, s)
		}

		rep.TotalScore += s.Score()
		rep.BestScore = max(rep.BestScore, s.Score())
		if b == opts.Boards-1 {
			rep.FinalBoards = s.Grid().Rows()
		}
	}

	return rep
}

// track folds one settled operation into the report.
func (r *SimReport) track(d core.Delta, rules core.Rules, s *core.Session) {
	r.BestChain = max(r.BestChain, d.Chain)
	r.LongestRun = max(r.LongestRun, d.LongestRun)
	r.Iterations += d.Iterations
	if d.Capped {
		r.Capped++
	}
	if core.HasRuns(s.Grid(), rules.LegacyScanBounds) {
		r.Unsettled++
	}
}

// randomDirection returns one of the four unit vectors.
func randomDirection(rng *rand.Rand) (dx, dy int) {
	switch rng.Intn(4) {
	case 0:
		return 1, 0
	case 1:
		return -1, 0
	case 2:
		return 0, 1
	default:
		return 0, -1
	}
}

// ProductiveRate returns the share of applied swaps that cleared a run.
func (r SimReport) ProductiveRate() float64 {
	if r.Swaps == 0 {
		return 0
	}
	return float64(r.Productive) / float64(r.Swaps)
}

// AverageScore returns the mean final score per board.
func (r SimReport) AverageScore() float64 {
	if r.Boards == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Boards)
}
