package core

// Run is one qualifying straight line of matching tiles.
type Run struct {
	Cells []Coord // in line order
	Color Color   // adopted color of the run
}

// Len returns the number of cells in the run.
func (r Run) Len() int {
	return len(r.Cells)
}

// Runs finds every qualifying run on the board. Rows are walked top to
// bottom, then columns left to right; a run qualifies when it spans at least
// three cells and contains at least two non-wildcard tiles.
func Runs(b *Board) []Run {
	var runs []Run
	for y := 0; y < b.H; y++ {
		runs = appendLineRuns(runs, b, C(0, y), 1, 0, b.W)
	}
	for x := 0; x < b.W; x++ {
		runs = appendLineRuns(runs, b, C(x, 0), 0, 1, b.H)
	}
	return runs
}

// Scan returns the union of all qualifying run cells.
func Scan(b *Board) *Mask {
	m := NewMask(b.W, b.H)
	for _, r := range Runs(b) {
		for _, c := range r.Cells {
			m.Mark(c)
		}
	}
	return m
}

// appendLineRuns scans one row or column for qualifying runs. A block adopts
// the color of its first non-wildcard tile; wildcards extend any block. When
// a tile breaks the block on color, the next block restarts just after the
// block's last non-wildcard tile so that trailing wildcards are shared with
// the following run.
func appendLineRuns(runs []Run, b *Board, origin Coord, dx, dy, length int) []Run {
	start := 0
	for start < length {
		cell := origin.Add(dx*start, dy*start)
		t := b.At(cell)
		if t.IsEmpty() {
			start++
			continue
		}

		adopted := t.Color
		haveColor := t.HasMatchColor()
		real := 0
		lastReal := start
		if haveColor {
			real = 1
		}

		end := start + 1
		for end < length {
			nt := b.At(origin.Add(dx*end, dy*end))
			if nt.IsEmpty() {
				break
			}
			if nt.IsWildcard() {
				end++
				continue
			}
			if !haveColor {
				adopted = nt.Color
				haveColor = true
			} else if nt.Color != adopted {
				break
			}
			real++
			lastReal = end
			end++
		}

		if end-start >= 3 && real >= 2 {
			cells := make([]Coord, 0, end-start)
			for i := start; i < end; i++ {
				cells = append(cells, origin.Add(dx*i, dy*i))
			}
			runs = append(runs, Run{Cells: cells, Color: adopted})
		}

		if end >= length || b.At(origin.Add(dx*end, dy*end)).IsEmpty() {
			start = end + 1
		} else {
			// Color break: trailing wildcards after the last real tile may
			// belong to the next run too.
			start = lastReal + 1
		}
	}
	return runs
}
