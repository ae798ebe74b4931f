package core

// MinRun is the shortest run that gets crushed.
const MinRun = 3

// Source tells which rule produced a clear.
type Source uint8

const (
	SourceRow Source = iota
	SourceColumn
	SourceBomb
)

// String returns a short name for the source.
func (s Source) String() string {
	switch s {
	case SourceRow:
		return "row"
	case SourceColumn:
		return "column"
	case SourceBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Run is a straight line of same-colored cells that was cleared.
type Run struct {
	Source Source
	Color  Color
	Cells  []int
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Cells)
}

// columnLimit returns the exclusive upper bound of column-scan start cells.
// The general bound covers rows 0..width-3. The legacy bound is one less,
// which is the historical fixed 47 on the 8-wide board.
func columnLimit(width int, legacy bool) int {
	n := width * (width - 2)
	if legacy {
		n--
	}
	if n < 0 {
		return 0
	}
	return n
}

// ClearRuns scans rows, then columns, and clears every run of MinRun or
// more same-colored cells as soon as it is found. Row clears are therefore
// visible to the column scan. onRun, when non-nil, is called once per run
// after its cells were set Empty. It reports whether any run was found.
func ClearRuns(g *Grid, legacyBounds bool, onRun func(Run)) bool {
	found := false
	w := g.Width
	size := g.Size()

	// Row scan
	for i := 0; i < size; i++ {
		col := g.Col(i)
		if col > w-MinRun {
			continue
		}
		color, ok := g.Cells[i].Color()
		if !ok {
			continue
		}

		cells := []int{i}
		for j := 1; j < w-col && g.Cells[i+j] == g.Cells[i]; j++ {
			cells = append(cells, i+j)
		}

		if len(cells) >= MinRun {
			clearCells(g, cells)
			found = true
			if onRun != nil {
				onRun(Run{Source: SourceRow, Color: color, Cells: cells})
			}
		}
	}

	// Column scan
	limit := columnLimit(w, legacyBounds)
	for i := 0; i < limit && i < size; i++ {
		color, ok := g.Cells[i].Color()
		if !ok {
			continue
		}

		cells := []int{i}
		for j := 1; j < w; j++ {
			k := i + j*w
			if k >= size || g.Cells[k] != g.Cells[i] {
				break
			}
			cells = append(cells, k)
		}

		if len(cells) >= MinRun {
			clearCells(g, cells)
			found = true
			if onRun != nil {
				onRun(Run{Source: SourceColumn, Color: color, Cells: cells})
			}
		}
	}

	return found
}

// FindRuns reports the runs a ClearRuns pass would clear, without touching g.
func FindRuns(g *Grid, legacyBounds bool) []Run {
	var runs []Run
	ClearRuns(g.Clone(), legacyBounds, func(r Run) {
		runs = append(runs, r)
	})
	return runs
}

// HasRuns reports whether g contains at least one clearable run.
func HasRuns(g *Grid, legacyBounds bool) bool {
	return ClearRuns(g.Clone(), legacyBounds, nil)
}

func clearCells(g *Grid, cells []int) {
	for _, c := range cells {
		g.Cells[c] = Empty
	}
}
