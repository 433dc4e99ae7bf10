package core

// SpecialCreated records a special tile minted during a clear.
type SpecialCreated struct {
	Cell Coord
	Tile Tile
}

// ColorWipe records a consumed wildcard wiping its partner colors. WholeBoard
// is set when two wildcards were swapped into each other.
type ColorWipe struct {
	Cell       Coord
	Colors     []Color
	WholeBoard bool
}

// ClearResult describes one clear pass over a matched mask.
type ClearResult struct {
	Points  int
	Cleared []Coord
	Created *SpecialCreated
	Wipes   []ColorWipe
}

// ClearAndScore removes the matched tiles from the board and returns the
// points earned, perCell per cleared tile. A 4-run mints an area-clear and a
// 5+ run mints a wildcard; at most one special is created per call, placed at
// preferred when preferred lies inside both the run and the mask, otherwise
// at the run's midpoint. Specials consumed by the mask expand it: an
// area-clear marks its 3x3 neighborhood, a wildcard marks every board cell
// whose color appears among the currently masked non-wildcard tiles. An
// empty mask clears nothing and scores zero.
func ClearAndScore(b *Board, matched *Mask, preferred Coord, perCell int) ClearResult {
	if matched == nil || !matched.Any() {
		return ClearResult{}
	}

	marked := matched.Clone()
	created := createSpecial(b, marked, preferred)

	var wipes []ColorWipe
	marked, wipes = expand(b, marked, created)
	if created != nil {
		// A wipe may have re-marked the fresh special.
		marked.Unmark(created.Cell)
	}

	var cleared []Coord
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := C(x, y)
			if !marked.Has(c) || b.At(c).IsEmpty() {
				continue
			}
			b.Set(c, EmptyTile())
			cleared = append(cleared, c)
		}
	}

	return ClearResult{
		Points:  len(cleared) * perCell,
		Cleared: cleared,
		Created: created,
		Wipes:   wipes,
	}
}

// createSpecial picks the run that mints a special for this clear, if any,
// rewrites the placement cell and removes it from the mask. The board is
// rescanned directly: the first 5+ run in scan order wins a wildcard,
// otherwise the first exactly-4 run wins an area-clear. Creation is skipped
// when the placement cell is not part of the mask.
func createSpecial(b *Board, marked *Mask, preferred Coord) *SpecialCreated {
	runs := Runs(b)

	var pick *Run
	var kind Kind
	for i := range runs {
		if runs[i].Len() >= 5 {
			pick = &runs[i]
			kind = KindWildcard
			break
		}
	}
	if pick == nil {
		for i := range runs {
			if runs[i].Len() == 4 {
				pick = &runs[i]
				kind = KindAreaClear
				break
			}
		}
	}
	if pick == nil {
		return nil
	}

	cell := pick.Cells[(pick.Len()-1)/2]
	if containsCoord(pick.Cells, preferred) && marked.Has(preferred) {
		cell = preferred
	}
	if !marked.Has(cell) {
		return nil
	}

	t := Tile{Kind: kind, Color: b.At(cell).Color}
	marked.Unmark(cell)
	b.Set(cell, t)
	return &SpecialCreated{Cell: cell, Tile: t}
}

// expand grows the mask through consumed specials until no new cells appear.
// Each special is consumed once; a freshly created special is never consumed
// by the clear that minted it.
func expand(b *Board, marked *Mask, created *SpecialCreated) (*Mask, []ColorWipe) {
	var wipes []ColorWipe
	queue := marked.Cells()
	consumed := NewMask(b.W, b.H)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if consumed.Has(c) {
			continue
		}
		if created != nil && c.Equal(created.Cell) {
			continue
		}
		t := b.At(c)
		if !t.IsSpecial() {
			continue
		}
		consumed.Mark(c)

		switch t.Kind {
		case KindAreaClear:
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					n := c.Add(dx, dy)
					if !b.InBounds(n) || marked.Has(n) {
						continue
					}
					marked.Mark(n)
					queue = append(queue, n)
				}
			}
		case KindWildcard:
			colors := partnerColors(b, marked)
			for y := 0; y < b.H; y++ {
				for x := 0; x < b.W; x++ {
					n := C(x, y)
					if marked.Has(n) {
						continue
					}
					nt := b.At(n)
					if !nt.HasMatchColor() || !containsColor(colors, nt.Color) {
						continue
					}
					marked.Mark(n)
					queue = append(queue, n)
				}
			}
			wipes = append(wipes, ColorWipe{Cell: c, Colors: colors})
		}
	}
	return marked, wipes
}

// partnerColors returns the distinct colors of the currently masked
// non-wildcard tiles, in color order.
func partnerColors(b *Board, marked *Mask) []Color {
	var seen [ColorCount]bool
	for _, c := range marked.Cells() {
		t := b.At(c)
		if t.HasMatchColor() {
			seen[t.Color] = true
		}
	}
	var out []Color
	for c := Color(0); c < ColorCount; c++ {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

func containsCoord(cells []Coord, c Coord) bool {
	for _, o := range cells {
		if o.Equal(c) {
			return true
		}
	}
	return false
}

func containsColor(colors []Color, c Color) bool {
	for _, o := range colors {
		if o == c {
			return true
		}
	}
	return false
}
