// Package rockswap provides the RockSwap tile-matching puzzle for the
// platform. The board resolution engine lives in the core subpackage;
// this package adapts it to ticks, input frames and the screen buffer.
package rockswap

import (
	"math/rand"

	"github.com/BruceRanger/rockswap/internal/config"
	platformcore "github.com/BruceRanger/rockswap/internal/core"
	engine "github.com/BruceRanger/rockswap/internal/games/rockswap/core"
	"github.com/BruceRanger/rockswap/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a RockSwap session to the platform game interface.
type Game struct {
	preset config.BoardPreset
	rng    *rand.Rand
	tick   uint64

	cfg     config.RockswapConfig
	session *engine.Session

	// Cursor and selection
	cursor   engine.Coord
	selected engine.Coord
	hasSel   bool

	// Cascade pacing
	resolveCountdown int

	// Feedback from the most recent pass
	lastCleared   []engine.Coord
	lastCreated   *engine.SpecialCreated
	lastScored    int
	lastChain     int
	lastWipe      bool
	highlightLeft int

	// Screen dimensions
	screenW int
	screenH int

	runtime  platformcore.RuntimeConfig
	paused   bool
	tooSmall bool
}

// New creates the classic 8x8 six-color game.
func New() *Game {
	return &Game{preset: config.PresetClassic}
}

// NewMini creates the compact 6x6 five-color game.
func NewMini() *Game {
	return &Game{preset: config.PresetMini}
}

// NewGrand creates the wide 10x8 seven-color game.
func NewGrand() *Game {
	return &Game{preset: config.PresetGrand}
}

func init() {
	registry.Register("rockswap", func() registry.Game {
		return New()
	})
	registry.Register("rockswap_mini", func() registry.Game {
		return NewMini()
	})
	registry.Register("rockswap_grand", func() registry.Game {
		return NewGrand()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.preset {
	case config.PresetMini:
		return "rockswap_mini"
	case config.PresetGrand:
		return "rockswap_grand"
	default:
		return "rockswap"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.PresetMini:
		return "RockSwap Mini"
	case config.PresetGrand:
		return "RockSwap Grand"
	default:
		return "RockSwap Classic"
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.hasSel = false
	g.resolveCountdown = 0
	g.clearFeedback()

	// Load board config
	c, err := config.LoadRockswap(configPath)
	if err != nil {
		c = config.DefaultRockswapConfig()
	}
	config.ApplyBoardPreset(&c, g.preset)
	g.cfg = c

	rules := engine.Rules{
		Width:         c.Board.Width,
		Height:        c.Board.Height,
		Colors:        c.Board.Colors,
		PointsPerCell: c.Scoring.PointsPerCell,
		PassCeiling:   c.Scoring.PassCeiling,
	}
	g.session = engine.NewSession(rules, g.rng)
	g.cursor = engine.C(0, 0)

	g.checkScreenSize()
}

// clearFeedback drops the highlight state from the previous pass.
func (g *Game) clearFeedback() {
	g.lastCleared = nil
	g.lastCreated = nil
	g.lastScored = 0
	g.lastChain = 0
	g.lastWipe = false
	g.highlightLeft = 0
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Board.Width*cellWidth + 1
	minH := g.cfg.Board.Height*cellHeight + 1 + hudHeight + 1
	if minW < 40 {
		minW = 40
	}
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.highlightLeft > 0 {
		g.highlightLeft--
	}

	if g.tooSmall || g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart after game over
	if in.Has(platformcore.ActionRestart) && g.session.GameOver() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.runtime.TickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.session.GameOver() {
		return platformcore.StepResult{State: g.State()}
	}

	// Cascades resolve one pass at a time so the player can watch them.
	if g.session.Resolving() {
		g.resolveCountdown--
		if g.resolveCountdown <= 0 {
			g.runResolvePass()
			g.resolveCountdown = g.cfg.Render.ResolveEveryTicks
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.handleCursor(in)

	if in.Has(platformcore.ActionSelect) {
		g.handleSelect()
	}

	return platformcore.StepResult{State: g.State()}
}

// runResolvePass executes one cascade pass and records it for rendering.
func (g *Game) runResolvePass() {
	pass := g.session.ResolveStep()
	if pass.Stable {
		return
	}

	g.lastCleared = pass.Cleared
	g.lastCreated = pass.Created
	g.lastScored = pass.Scored
	g.lastChain = pass.Chain
	g.lastWipe = len(pass.Wipes) > 0
	g.highlightLeft = g.cfg.Render.HighlightTicks
}

// handleCursor moves the cursor, clamped to the board.
func (g *Game) handleCursor(in platformcore.InputFrame) {
	b := g.session.Board()

	if in.Has(platformcore.ActionUp) && g.cursor.Y > 0 {
		g.cursor.Y--
	}
	if in.Has(platformcore.ActionDown) && g.cursor.Y < b.H-1 {
		g.cursor.Y++
	}
	if in.Has(platformcore.ActionLeft) && g.cursor.X > 0 {
		g.cursor.X--
	}
	if in.Has(platformcore.ActionRight) && g.cursor.X < b.W-1 {
		g.cursor.X++
	}
}

// handleSelect grabs the tile under the cursor, or swaps it with the
// current selection when the two cells are adjacent.
func (g *Game) handleSelect() {
	if !g.hasSel {
		g.hasSel = true
		g.selected = g.cursor
		return
	}

	if g.cursor.Equal(g.selected) {
		g.hasSel = false
		return
	}

	if g.cursor.Manhattan(g.selected) != 1 {
		// Too far to swap; move the selection instead
		g.selected = g.cursor
		return
	}

	g.hasSel = false
	if g.session.Swap(g.selected, g.cursor) {
		g.clearFeedback()
		g.resolveCountdown = g.cfg.Render.ResolveEveryTicks
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Moves returns how many accepted swaps the current run has used.
func (g *Game) Moves() int {
	if g.session == nil {
		return 0
	}
	return g.session.Moves()
}

// MaxChain returns the deepest cascade reached in the current run.
func (g *Game) MaxChain() int {
	if g.session == nil {
		return 0
	}
	return g.session.MaxChain()
}
