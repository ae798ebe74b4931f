package core

// Rand is the random source used for refills and bomb placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ApplyGravity makes one ascending pass over every row but the last: a token
// whose lower neighbor is Empty moves down one cell. Because the pass runs
// top to bottom, a token can keep falling through a stack of Empty cells
// within the same pass, while tokens above it wait for the next pass.
// It reports whether any token moved.
func ApplyGravity(g *Grid) bool {
	moved := false
	limit := g.Size() - g.Width
	for i := 0; i < limit; i++ {
		below := i + g.Width
		if g.Cells[below] != Empty {
			continue
		}
		if g.Cells[i] != Empty {
			moved = true
		}
		g.Cells[below] = g.Cells[i]
		g.Cells[i] = Empty
	}
	return moved
}

// Refill gives every Empty cell of the top row a uniformly random color
// from the palette. Lower cells are only filled by later gravity passes.
// It reports whether any cell was filled.
func Refill(g *Grid, rng Rand, palette []Color) bool {
	if len(palette) == 0 {
		return false
	}
	filled := false
	for i := 0; i < g.Width && i < g.Size(); i++ {
		if g.Cells[i] == Empty {
			g.Cells[i] = Colored(palette[rng.Intn(len(palette))])
			filled = true
		}
	}
	return filled
}

// ResolveCascade runs clear -> gravity -> refill until an iteration finds no
// run and neither gravity nor refill changes the board. The board is then
// exactly what the last, empty, detector pass saw.
func (s *Session) ResolveCascade() Delta {
	d := Delta{Applied: true, BombCell: -1}
	s.resolve(&d)
	return d
}

func (s *Session) resolve(d *Delta) {
	for {
		if d.Iterations >= s.rules.MaxCascadeIterations {
			d.Capped = true
			return
		}
		d.Iterations++

		found := ClearRuns(s.grid, s.rules.LegacyScanBounds, func(r Run) {
			s.scoreRun(r, d)
		})
		moved := ApplyGravity(s.grid)
		filled := Refill(s.grid, s.rng, s.rules.Palette)

		if found {
			d.Chain++
		}
		if !found && !moved && !filled {
			return
		}
	}
}

// scoreRun applies the per-token rule to one cleared run.
func (s *Session) scoreRun(r Run, d *Delta) {
	points := s.rules.PointsPerToken * r.Len()
	s.addScore(points, d)
	d.Runs++
	d.Cleared = append(d.Cleared, r.Cells...)
	if r.Len() > d.LongestRun {
		d.LongestRun = r.Len()
	}
	s.emit(CrushEvent{Source: r.Source, Cells: r.Cells, Points: points}, d)
}
