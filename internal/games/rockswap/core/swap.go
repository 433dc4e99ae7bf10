package core

// TrySwap exchanges two adjacent tiles if the move is legal, and reports
// whether the board was changed. Both cells must be in bounds, exactly one
// step apart and non-empty. A swap that puts a wildcard in either cell is
// always kept; any other swap must produce a qualifying run through one of
// the two cells or it is reverted.
func TrySwap(b *Board, from, to Coord) bool {
	if !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	if from.Manhattan(to) != 1 {
		return false
	}
	if b.At(from).IsEmpty() || b.At(to).IsEmpty() {
		return false
	}

	exchange(b, from, to)

	if b.At(from).IsWildcard() || b.At(to).IsWildcard() {
		return true
	}

	m := Scan(b)
	if m.Has(from) || m.Has(to) {
		return true
	}

	exchange(b, from, to)
	return false
}

func exchange(b *Board, a, c Coord) {
	ta, tc := b.At(a), b.At(c)
	b.Set(a, tc)
	b.Set(c, ta)
}

// HasLegalSwap reports whether any adjacent pair of tiles can be legally
// swapped. The board is not modified.
func HasLegalSwap(b *Board) bool {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			from := C(x, y)
			for _, to := range []Coord{C(x + 1, y), C(x, y + 1)} {
				if !b.InBounds(to) {
					continue
				}
				if TrySwap(b.Clone(), from, to) {
					return true
				}
			}
		}
	}
	return false
}

// LegalSwaps returns every adjacent pair that would be a legal swap. Each
// pair appears once, with the right and down neighbor of each cell tried.
func LegalSwaps(b *Board) [][2]Coord {
	var out [][2]Coord
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			from := C(x, y)
			for _, to := range []Coord{C(x + 1, y), C(x, y + 1)} {
				if !b.InBounds(to) {
					continue
				}
				if TrySwap(b.Clone(), from, to) {
					out = append(out, [2]Coord{from, to})
				}
			}
		}
	}
	return out
}
