package rockswap

import (
	engine "github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Variant      string // registry ID of the board variant
	Score        int
	Moves        int
	Chain        int
	MaxChain     int
	Cursor       engine.Coord
	Selected     engine.Coord
	HasSelection bool
	W, H         int
	Board        []engine.Tile // row-major copy of the board
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Variant:      g.ID(),
		Cursor:       g.cursor,
		Selected:     g.selected,
		HasSelection: g.hasSel,
		State:        StatePlaying,
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	}

	if g.session == nil {
		return snap
	}

	snap.Score = g.session.Score()
	snap.Moves = g.session.Moves()
	snap.Chain = g.session.Chain()
	snap.MaxChain = g.session.MaxChain()

	b := g.session.Board()
	snap.W = b.W
	snap.H = b.H
	snap.Board = make([]engine.Tile, len(b.Cells))
	copy(snap.Board, b.Cells)

	if snap.State == StatePlaying {
		switch {
		case g.session.GameOver():
			snap.State = StateGameOver
		case g.session.Resolving():
			snap.State = StateResolving
		}
	}

	return snap
}
