package core

import "math/rand"

// Collapse slides every tile straight down over the empty cells below it,
// column by column, preserving vertical order.
func Collapse(b *Board) {
	for x := 0; x < b.W; x++ {
		write := b.H - 1
		for y := b.H - 1; y >= 0; y-- {
			t := b.At(C(x, y))
			if t.IsEmpty() {
				continue
			}
			if y != write {
				b.Set(C(x, write), t)
				b.Set(C(x, y), EmptyTile())
			}
			write--
		}
	}
}

// Refill replaces every empty cell with a random normal tile drawn from the
// first colors colors. Refilled tiles may form new runs; the cascade resolves
// those on the next pass.
func Refill(b *Board, rng *rand.Rand, colors int) {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := C(x, y)
			if !b.At(c).IsEmpty() {
				continue
			}
			b.Set(c, NormalTile(Color(rng.Intn(colors))))
		}
	}
}

// NewRandomBoard fills a fresh board with random normal tiles so that no
// three-in-a-row exists anywhere. Cells are filled in row-major order and a
// tile matching its two left or two upper neighbors is re-rolled. Requires
// colors >= 3.
func NewRandomBoard(w, h int, rng *rand.Rand, colors int) *Board {
	b := NewBoard(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := C(x, y)
			t := NormalTile(Color(rng.Intn(colors)))
			for matchesTwoBack(b, c, t) {
				t = NormalTile(Color(rng.Intn(colors)))
			}
			b.Set(c, t)
		}
	}
	return b
}

// matchesTwoBack reports whether placing t at c would complete a horizontal
// or vertical three-in-a-row with the already filled neighbors.
func matchesTwoBack(b *Board, c Coord, t Tile) bool {
	left1, left2 := b.At(c.Add(-1, 0)), b.At(c.Add(-2, 0))
	if left1.Kind == KindNormal && left2.Kind == KindNormal &&
		left1.Color == t.Color && left2.Color == t.Color {
		return true
	}
	up1, up2 := b.At(c.Add(0, -1)), b.At(c.Add(0, -2))
	if up1.Kind == KindNormal && up2.Kind == KindNormal &&
		up1.Color == t.Color && up2.Color == t.Color {
		return true
	}
	return false
}
