package core_test

import (
	"math/rand"
	"testing"

	"github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

func TestCollapseSlidesTilesDown(t *testing.T) {
	b := buildBoard(t,
		"0.1",
		"...",
		"1.*",
		".2.",
	)

	core.Collapse(b)

	// Column 0: red above green, order preserved.
	if got := b.At(core.C(0, 2)); got.Color != core.ColorRed {
		t.Errorf("expected red at (0,2), got %v", got)
	}
	if got := b.At(core.C(0, 3)); got.Color != core.ColorGreen {
		t.Errorf("expected green at (0,3), got %v", got)
	}
	// Column 1: the single tile stays at the bottom.
	if got := b.At(core.C(1, 3)); got.Color != core.ColorYellow {
		t.Errorf("expected yellow at (1,3), got %v", got)
	}
	// Column 2: specials fall like any tile.
	if got := b.At(core.C(2, 2)); got.Color != core.ColorGreen {
		t.Errorf("expected green at (2,2), got %v", got)
	}
	if !b.At(core.C(2, 3)).IsWildcard() {
		t.Error("expected the wildcard at (2,3)")
	}
	// Everything above is empty.
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if !b.At(core.C(x, y)).IsEmpty() {
				t.Errorf("expected (%d,%d) empty", x, y)
			}
		}
	}
}

func TestCollapseFullColumnIsNoop(t *testing.T) {
	b := buildBoard(t,
		"01",
		"12",
		"20",
	)
	before := b.Clone()

	core.Collapse(b)

	if !b.Equal(before) {
		t.Error("collapse of a full board should change nothing")
	}
}

func TestRefillFillsOnlyEmptyCells(t *testing.T) {
	b := buildBoard(t,
		"0.1",
		".2.",
		"1.0",
	)
	rng := rand.New(rand.NewSource(42))

	core.Refill(b, rng, 4)

	if b.NonEmptyCount() != 9 {
		t.Errorf("expected a full board, got %d occupied cells", b.NonEmptyCount())
	}
	// Pre-existing tiles are untouched.
	if got := b.At(core.C(0, 0)); got.Color != core.ColorRed {
		t.Errorf("refill overwrote (0,0): %v", got)
	}
	if got := b.At(core.C(1, 1)); got.Color != core.ColorYellow {
		t.Errorf("refill overwrote (1,1): %v", got)
	}
	// New tiles are normal and drawn from the requested palette.
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			got := b.At(core.C(x, y))
			if got.Kind != core.KindNormal {
				t.Errorf("refill should only place normal tiles, got %v at (%d,%d)", got, x, y)
			}
			if int(got.Color) >= 4 {
				t.Errorf("color %v at (%d,%d) outside the palette", got.Color, x, y)
			}
		}
	}
}

func TestRefillIsDeterministic(t *testing.T) {
	a := buildBoard(t,
		"0..",
		"...",
		"..1",
	)
	b := a.Clone()

	core.Refill(a, rand.New(rand.NewSource(7)), 6)
	core.Refill(b, rand.New(rand.NewSource(7)), 6)

	if !a.Equal(b) {
		t.Error("same seed should refill identically")
	}
}

func TestNewRandomBoardHasNoRuns(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := core.NewRandomBoard(8, 8, rng, 6)

		if b.NonEmptyCount() != 64 {
			t.Fatalf("seed %d: board not full", seed)
		}
		if m := core.Scan(b); m.Any() {
			t.Errorf("seed %d: fresh board already matches at %v", seed, m.Cells())
		}
		for _, tile := range b.Cells {
			if tile.Kind != core.KindNormal {
				t.Fatalf("seed %d: fresh board should hold only normal tiles, got %v", seed, tile)
			}
			if int(tile.Color) >= 6 {
				t.Fatalf("seed %d: color %v outside the palette", seed, tile.Color)
			}
		}
	}
}

func TestNewRandomBoardIsDeterministic(t *testing.T) {
	a := core.NewRandomBoard(6, 6, rand.New(rand.NewSource(99)), 5)
	b := core.NewRandomBoard(6, 6, rand.New(rand.NewSource(99)), 5)

	if !a.Equal(b) {
		t.Error("same seed should build the same board")
	}
}
