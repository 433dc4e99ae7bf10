package core_test

import (
	"testing"

	"github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

// buildBoard builds a board from one string per row. Digits place normal
// tiles by color index, 'A'..'H' place area-clears by color index, '*'
// places a wildcard and '.' leaves the cell empty.
func buildBoard(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	b := core.NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			c := core.C(x, y)
			switch {
			case ch == '.':
			case ch == '*':
				b.Set(c, core.WildcardTile(core.ColorRed))
			case ch >= '0' && ch <= '7':
				b.Set(c, core.NormalTile(core.Color(ch-'0')))
			case ch >= 'A' && ch <= 'H':
				b.Set(c, core.AreaClearTile(core.Color(ch-'A')))
			default:
				t.Fatalf("bad board rune %q", ch)
			}
		}
	}
	return b
}

func hasCoord(cells []core.Coord, c core.Coord) bool {
	for _, o := range cells {
		if o.Equal(c) {
			return true
		}
	}
	return false
}

func TestNewBoardStartsEmpty(t *testing.T) {
	b := core.NewBoard(4, 3)

	if b.W != 4 || b.H != 3 {
		t.Errorf("expected 4x3 board, got %dx%d", b.W, b.H)
	}
	if len(b.Cells) != 12 {
		t.Errorf("expected 12 cells, got %d", len(b.Cells))
	}
	if b.NonEmptyCount() != 0 {
		t.Errorf("expected empty board, got %d occupied cells", b.NonEmptyCount())
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.Set(core.C(1, 1), core.NormalTile(core.ColorBlue))

	outside := []core.Coord{
		core.C(-1, 0),
		core.C(0, -1),
		core.C(3, 0),
		core.C(0, 3),
		core.C(99, 99),
	}
	for _, c := range outside {
		if b.InBounds(c) {
			t.Errorf("%v should be out of bounds", c)
		}
		if got := b.At(c); !got.IsEmpty() {
			t.Errorf("At(%v) should return an empty tile, got %v", c, got)
		}
		// Writes outside the board must be ignored.
		b.Set(c, core.NormalTile(core.ColorRed))
	}

	if b.NonEmptyCount() != 1 {
		t.Errorf("out-of-bounds writes changed the board: %d occupied cells", b.NonEmptyCount())
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := buildBoard(t,
		"01",
		"23",
	)
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	clone.Set(core.C(0, 0), core.NormalTile(core.ColorWhite))
	if b.Equal(clone) {
		t.Error("mutating the clone should not affect the original")
	}
	if got := b.At(core.C(0, 0)); got.Color != core.ColorRed {
		t.Errorf("original changed after clone mutation: %v", got)
	}
}

func TestCoordManhattan(t *testing.T) {
	testCases := []struct {
		a, b     core.Coord
		expected int
	}{
		{core.C(0, 0), core.C(0, 0), 0},
		{core.C(0, 0), core.C(1, 0), 1},
		{core.C(0, 0), core.C(0, 1), 1},
		{core.C(2, 3), core.C(4, 1), 4},
		{core.C(5, 5), core.C(4, 5), 1},
	}
	for _, tc := range testCases {
		if got := tc.a.Manhattan(tc.b); got != tc.expected {
			t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
		if got := tc.b.Manhattan(tc.a); got != tc.expected {
			t.Errorf("Manhattan(%v, %v) = %d, expected %d", tc.b, tc.a, got, tc.expected)
		}
	}
}

func TestMaskMarkAndCells(t *testing.T) {
	m := core.NewMask(3, 3)

	if m.Any() {
		t.Error("fresh mask should be empty")
	}

	m.Mark(core.C(2, 0))
	m.Mark(core.C(0, 1))
	m.Mark(core.C(2, 0)) // marking twice is a no-op
	m.Mark(core.C(5, 5)) // out of bounds is ignored

	if m.Count() != 2 {
		t.Errorf("expected 2 marked cells, got %d", m.Count())
	}
	if m.Has(core.C(5, 5)) {
		t.Error("out-of-bounds cell should not be marked")
	}

	// Cells come back in row-major order.
	cells := m.Cells()
	if len(cells) != 2 || cells[0] != core.C(2, 0) || cells[1] != core.C(0, 1) {
		t.Errorf("unexpected cells order: %v", cells)
	}

	m.Unmark(core.C(2, 0))
	if m.Has(core.C(2, 0)) {
		t.Error("unmarked cell should not be set")
	}
}
