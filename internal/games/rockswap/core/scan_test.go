package core_test

import (
	"testing"

	"github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

func TestScanFindsNothingWithoutRuns(t *testing.T) {
	b := buildBoard(t,
		"0120",
		"1201",
		"2012",
		"0120",
	)

	if m := core.Scan(b); m.Any() {
		t.Errorf("expected no matches, got %v", m.Cells())
	}
}

func TestScanRowRun(t *testing.T) {
	b := buildBoard(t,
		"1222",
		"0101",
		"1010",
		"0101",
	)

	m := core.Scan(b)
	expected := []core.Coord{core.C(1, 0), core.C(2, 0), core.C(3, 0)}
	if m.Count() != len(expected) {
		t.Fatalf("expected %d masked cells, got %v", len(expected), m.Cells())
	}
	for _, c := range expected {
		if !m.Has(c) {
			t.Errorf("expected %v in mask", c)
		}
	}
}

func TestScanColumnRun(t *testing.T) {
	b := buildBoard(t,
		"3010",
		"3101",
		"3010",
		"0101",
	)

	m := core.Scan(b)
	expected := []core.Coord{core.C(0, 0), core.C(0, 1), core.C(0, 2)}
	if m.Count() != len(expected) {
		t.Fatalf("expected %d masked cells, got %v", len(expected), m.Cells())
	}
	for _, c := range expected {
		if !m.Has(c) {
			t.Errorf("expected %v in mask", c)
		}
	}
}

func TestScanUnionsRowAndColumnRuns(t *testing.T) {
	// A corner shape: a row run and a column run sharing (0,0).
	b := buildBoard(t,
		"000.",
		"0...",
		"0...",
		"....",
	)

	m := core.Scan(b)
	if m.Count() != 5 {
		t.Fatalf("expected 5 masked cells (shared corner counted once), got %v", m.Cells())
	}
	for _, c := range []core.Coord{
		core.C(0, 0), core.C(1, 0), core.C(2, 0),
		core.C(0, 1), core.C(0, 2),
	} {
		if !m.Has(c) {
			t.Errorf("expected %v in mask", c)
		}
	}
}

func TestScanIgnoresPairs(t *testing.T) {
	b := buildBoard(t,
		"0011",
		"1100",
		"0011",
		"1100",
	)

	if m := core.Scan(b); m.Any() {
		t.Errorf("two in a row should not match, got %v", m.Cells())
	}
}

func TestScanEmptyCellBreaksRun(t *testing.T) {
	b := buildBoard(t,
		"00.00",
	)

	if m := core.Scan(b); m.Any() {
		t.Errorf("a gap should break the run, got %v", m.Cells())
	}
}

func TestScanWildcardJoinsRun(t *testing.T) {
	// Wildcard at the head of two reds: qualifies and is fully masked.
	b := buildBoard(t,
		"*00.",
		"1212",
		"2121",
		"1212",
	)

	m := core.Scan(b)
	if m.Count() != 3 {
		t.Fatalf("expected 3 masked cells, got %v", m.Cells())
	}
	if !m.Has(core.C(0, 0)) {
		t.Error("the wildcard itself should be masked")
	}

	runs := core.Runs(b)
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	if runs[0].Color != core.ColorRed {
		t.Errorf("run should adopt the first non-wildcard color, got %v", runs[0].Color)
	}
}

func TestScanWildcardBetweenMatchingTiles(t *testing.T) {
	b := buildBoard(t,
		"0*0.",
		"1212",
		"2121",
		"1212",
	)

	m := core.Scan(b)
	if m.Count() != 3 {
		t.Errorf("expected [tile, wildcard, tile] to match, got %v", m.Cells())
	}
}

func TestScanLineNeedsTwoRealTiles(t *testing.T) {
	// One real tile propped up by wildcards is not a match.
	b := buildBoard(t,
		"**0.",
		"1212",
		"2121",
		"1212",
	)

	if m := core.Scan(b); m.Any() {
		t.Errorf("a single real tile should not match, got %v", m.Cells())
	}
}

func TestScanAllWildcardsNeverMatch(t *testing.T) {
	b := buildBoard(t,
		"***.",
		"1212",
		"2121",
		"1212",
	)

	if m := core.Scan(b); m.Any() {
		t.Errorf("an all-wildcard line should not match, got %v", m.Cells())
	}
}

func TestScanWildcardSharedBetweenRuns(t *testing.T) {
	// The wildcard bridges a red run on its left and a green run on its
	// right; both qualify and the wildcard is part of both.
	b := buildBoard(t,
		"00*111",
	)

	runs := core.Runs(b)
	if len(runs) != 2 {
		t.Fatalf("expected two runs, got %d: %v", len(runs), runs)
	}
	if runs[0].Color != core.ColorRed || runs[0].Len() != 3 {
		t.Errorf("first run should be 3 red cells, got %v", runs[0])
	}
	if runs[1].Color != core.ColorGreen || runs[1].Len() != 4 {
		t.Errorf("second run should be 4 green cells, got %v", runs[1])
	}
	if !hasCoord(runs[0].Cells, core.C(2, 0)) || !hasCoord(runs[1].Cells, core.C(2, 0)) {
		t.Error("the wildcard should belong to both runs")
	}

	if m := core.Scan(b); m.Count() != 6 {
		t.Errorf("expected the whole row masked, got %v", m.Cells())
	}
}

func TestScanRowsBeforeColumns(t *testing.T) {
	// A row run at y=2 and a column run at x=3, disjoint.
	b := buildBoard(t,
		"...1",
		"...1",
		"0001",
		"....",
	)

	runs := core.Runs(b)
	if len(runs) != 2 {
		t.Fatalf("expected two runs, got %d", len(runs))
	}
	if runs[0].Cells[0] != core.C(0, 2) {
		t.Errorf("row runs should come first, got %v", runs[0].Cells)
	}
	if runs[1].Cells[0] != core.C(3, 0) {
		t.Errorf("column runs should come second, got %v", runs[1].Cells)
	}
}

func TestScanAreaClearMatchesByColor(t *testing.T) {
	// An area-clear behaves as its base color during matching.
	b := buildBoard(t,
		"0A0.",
		"1212",
		"2121",
		"1212",
	)

	m := core.Scan(b)
	if m.Count() != 3 {
		t.Errorf("expected the area-clear to complete the run, got %v", m.Cells())
	}
}

func TestScanLongRun(t *testing.T) {
	b := buildBoard(t,
		"22222",
	)

	runs := core.Runs(b)
	if len(runs) != 1 || runs[0].Len() != 5 {
		t.Fatalf("expected one run of 5, got %v", runs)
	}
}
