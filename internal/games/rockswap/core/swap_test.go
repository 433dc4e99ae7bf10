package core_test

import (
	"testing"

	"github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

// noRunBoard returns a 4x4 board with no runs and no legal swap shortage;
// used as a neutral fixture for precondition tests.
func noRunBoard(t *testing.T) *core.Board {
	t.Helper()
	return buildBoard(t,
		"0120",
		"1201",
		"2012",
		"0120",
	)
}

func TestTrySwapRejectsOutOfBounds(t *testing.T) {
	b := noRunBoard(t)

	if core.TrySwap(b, core.C(-1, 0), core.C(0, 0)) {
		t.Error("swap from outside the board should be rejected")
	}
	if core.TrySwap(b, core.C(3, 3), core.C(4, 3)) {
		t.Error("swap to outside the board should be rejected")
	}
}

func TestTrySwapRejectsNonAdjacentCells(t *testing.T) {
	b := noRunBoard(t)

	testCases := []struct {
		from, to core.Coord
	}{
		{core.C(0, 0), core.C(0, 0)}, // same cell
		{core.C(0, 0), core.C(1, 1)}, // diagonal
		{core.C(0, 0), core.C(2, 0)}, // two apart
		{core.C(1, 0), core.C(1, 3)}, // far apart
	}
	for _, tc := range testCases {
		if core.TrySwap(b, tc.from, tc.to) {
			t.Errorf("swap %v -> %v should be rejected", tc.from, tc.to)
		}
	}
}

func TestTrySwapRejectsEmptyCells(t *testing.T) {
	b := buildBoard(t,
		"01.",
		"120",
		"201",
	)

	if core.TrySwap(b, core.C(1, 0), core.C(2, 0)) {
		t.Error("swap into an empty cell should be rejected")
	}
	if core.TrySwap(b, core.C(2, 0), core.C(1, 0)) {
		t.Error("swap from an empty cell should be rejected")
	}
}

func TestTrySwapRevertsWhenNoRunForms(t *testing.T) {
	b := noRunBoard(t)
	before := b.Clone()

	if core.TrySwap(b, core.C(0, 0), core.C(1, 0)) {
		t.Error("swap producing no run should be rejected")
	}
	if !b.Equal(before) {
		t.Error("rejected swap should leave the board unchanged")
	}
}

func TestTrySwapAcceptsRunThroughSwappedCell(t *testing.T) {
	// Swapping (2,0) down completes a red row run through (2,1).
	b := buildBoard(t,
		"1200",
		"0021",
		"2102",
		"0120",
	)

	if !core.TrySwap(b, core.C(2, 0), core.C(2, 1)) {
		t.Fatal("swap completing a run should be accepted")
	}
	if got := b.At(core.C(2, 1)); got.Color != core.ColorRed {
		t.Errorf("swapped tile should stay in place, got %v", got)
	}
	if got := b.At(core.C(2, 0)); got.Color != core.ColorYellow {
		t.Errorf("counterpart tile should stay in place, got %v", got)
	}
}

func TestTrySwapWildcardAlwaysAccepted(t *testing.T) {
	// No run forms, but a wildcard is involved.
	b := buildBoard(t,
		"012*",
		"1201",
		"2012",
		"0120",
	)
	if !core.TrySwap(b, core.C(3, 0), core.C(3, 1)) {
		t.Error("swap moving a wildcard should always be accepted")
	}

	// Same with the wildcard as the destination.
	b = buildBoard(t,
		"012*",
		"1201",
		"2012",
		"0120",
	)
	if !core.TrySwap(b, core.C(2, 0), core.C(3, 0)) {
		t.Error("swap onto a wildcard should always be accepted")
	}
}

func TestHasLegalSwapOnStuckBoard(t *testing.T) {
	// Every color appears at most twice, so no swap can ever line up three.
	b := buildBoard(t,
		"012",
		"345",
		"012",
	)

	if core.HasLegalSwap(b) {
		t.Error("expected no legal swap")
	}
	if swaps := core.LegalSwaps(b); len(swaps) != 0 {
		t.Errorf("expected no legal swaps, got %v", swaps)
	}
}

func TestHasLegalSwapDoesNotMutate(t *testing.T) {
	b := buildBoard(t,
		"1200",
		"0021",
		"2102",
		"0120",
	)
	before := b.Clone()

	if !core.HasLegalSwap(b) {
		t.Error("expected a legal swap on this board")
	}
	if !b.Equal(before) {
		t.Error("HasLegalSwap should not modify the board")
	}
}

func TestLegalSwapsFindsKnownMove(t *testing.T) {
	b := buildBoard(t,
		"1200",
		"0021",
		"2102",
		"0120",
	)

	swaps := core.LegalSwaps(b)
	if len(swaps) == 0 {
		t.Fatal("expected at least one legal swap")
	}
	found := false
	for _, s := range swaps {
		if s[0].Equal(core.C(2, 0)) && s[1].Equal(core.C(2, 1)) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected swap (2,0)->(2,1) among %v", swaps)
	}
}
