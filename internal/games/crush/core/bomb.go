package core

// BombFootprint returns the cells of the 3x3 square centered on index, in
// ascending order. Cells outside [0, width*width) are skipped. Unless wrap is
// set, cells that would spill over the left or right edge into a
// neighboring row are skipped too.
func BombFootprint(width, index int, wrap bool) []int {
	size := width * width
	col := index % width
	cells := make([]int, 0, 9)

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			i := index + dr*width + dc
			if i < 0 || i >= size {
				continue
			}
			if !wrap && (col+dc < 0 || col+dc >= width) {
				continue
			}
			cells = append(cells, i)
		}
	}
	return cells
}

// TriggerBomb blasts the 3x3 neighborhood of cell i: every footprint cell
// becomes Empty and the flat bomb bonus is added. The cell is not checked
// for holding a Bomb; callers decide when a tap counts as a bomb trigger.
// The bomb slot is freed only once no Bomb is left on the board.
// Out-of-range cells are ignored. The board is left unsettled; the next
// cascade resolve fills the hole.
func (s *Session) TriggerBomb(i int) Delta {
	d := Delta{BombCell: -1}
	if !s.grid.InBounds(i) {
		return d
	}

	cells := BombFootprint(s.grid.Width, i, s.rules.WrapBombEdges)
	clearCells(s.grid, cells)

	d.Applied = true
	d.BombCell = i
	d.Cleared = append(d.Cleared, cells...)
	s.addScore(s.rules.BombPoints, &d)
	s.bombPresent = s.grid.BombIndex() >= 0
	s.emit(CrushEvent{Source: SourceBomb, Cells: cells, Points: s.rules.BombPoints}, &d)
	return d
}

// SpawnBomb turns a uniformly random cell into a Bomb, unless one is
// already on the board.
func (s *Session) SpawnBomb() Delta {
	d := Delta{BombCell: -1}
	if s.bombPresent {
		return d
	}

	i := s.rng.Intn(s.grid.Size())
	s.grid.Cells[i] = Bomb
	s.bombPresent = true

	d.Applied = true
	d.BombCell = i
	return d
}
