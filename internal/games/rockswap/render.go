package rockswap

import (
	"fmt"

	platformcore "github.com/BruceRanger/rockswap/internal/core"
	engine "github.com/BruceRanger/rockswap/internal/games/rockswap/core"
)

const (
	cellWidth  = 4 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// Tile glyphs by kind.
const (
	NormalGlyph    = '●'
	AreaClearGlyph = '◆'
	WildcardGlyph  = '★'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	b := g.session.Board()
	boardW := b.W*cellWidth + 1
	boardH := b.H*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderCursor(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score and cascade feedback.
func (g *Game) renderHUD(dst *platformcore.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(boardX, 1, scoreStr)

	movesStr := fmt.Sprintf("Moves: %d", g.session.Moves())
	movesX := boardX + boardW - len(movesStr)
	if movesX < boardX {
		movesX = boardX
	}
	dst.DrawText(movesX, 1, movesStr)

	// Cascade feedback flashes on the status line
	status, color := g.statusLine()
	if status != "" {
		statusX := boardX + (boardW-len(status))/2
		dst.DrawTextWithColor(statusX, 2, status, color)
	}
}

// statusLine returns the current status text and its color.
func (g *Game) statusLine() (string, platformcore.Color) {
	if g.session.Resolving() {
		if g.highlightLeft > 0 && g.lastChain > 0 {
			return g.chainFlash(), platformcore.ColorBrightYellow
		}
		return "Resolving...", platformcore.ColorGray
	}
	if g.highlightLeft > 0 && g.lastChain > 0 {
		return g.chainFlash(), platformcore.ColorBrightYellow
	}
	if g.hasSel {
		return "Pick an adjacent tile to swap", platformcore.ColorGray
	}
	return "", platformcore.ColorDefault
}

// chainFlash formats the feedback for the most recent pass.
func (g *Game) chainFlash() string {
	s := fmt.Sprintf("Chain x%d  +%d", g.lastChain, g.lastScored)
	if g.lastWipe {
		s = "Color wipe!  " + s
	}
	return s
}

// renderBoard draws the grid and its tiles.
func (g *Game) renderBoard(dst *platformcore.Screen, boardX, boardY int) {
	b := g.session.Board()

	// Draw grid borders
	for y := 0; y <= b.H; y++ {
		for x := 0; x <= b.W; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == b.W:
				corner = '┐'
			case y == b.H && x == 0:
				corner = '└'
			case y == b.H && x == b.W:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == b.H:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == b.W:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < b.W {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < b.H {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := engine.C(x, y)
			t := b.At(c)
			if t.IsEmpty() {
				continue
			}

			px := boardX + x*cellWidth + cellWidth/2
			py := boardY + y*cellHeight + 1

			dst.SetWithColor(px, py, tileGlyph(t), g.tileDisplayColor(c, t))
		}
	}
}

// tileDisplayColor picks the color for a tile, flashing cells touched by
// the most recent pass.
func (g *Game) tileDisplayColor(c engine.Coord, t engine.Tile) platformcore.Color {
	if g.highlightLeft > 0 {
		if g.lastCreated != nil && g.lastCreated.Cell.Equal(c) {
			return platformcore.ColorBrightMagenta
		}
		for _, cleared := range g.lastCleared {
			if cleared.Equal(c) {
				return platformcore.ColorBrightWhite
			}
		}
	}
	return tileColor(t.Color)
}

// renderCursor draws the cursor and selection markers.
func (g *Game) renderCursor(dst *platformcore.Screen, boardX, boardY int) {
	if g.session.GameOver() {
		return
	}

	if g.hasSel {
		px := boardX + g.selected.X*cellWidth
		py := boardY + g.selected.Y*cellHeight + 1
		dst.SetWithColor(px+1, py, '(', platformcore.ColorBrightCyan)
		dst.SetWithColor(px+cellWidth-1, py, ')', platformcore.ColorBrightCyan)
	}

	px := boardX + g.cursor.X*cellWidth
	py := boardY + g.cursor.Y*cellHeight + 1
	dst.SetWithColor(px+1, py, '[', platformcore.ColorBrightYellow)
	dst.SetWithColor(px+cellWidth-1, py, ']', platformcore.ColorBrightYellow)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.session.GameOver() {
		scoreStr := fmt.Sprintf("Final score: %d", g.session.Score())
		g.drawOverlay(dst, centerX, centerY, "NO MOVES LEFT", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(platformcore.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// tileGlyph returns the glyph for a tile kind.
func tileGlyph(t engine.Tile) rune {
	switch t.Kind {
	case engine.KindAreaClear:
		return AreaClearGlyph
	case engine.KindWildcard:
		return WildcardGlyph
	default:
		return NormalGlyph
	}
}

// tileColor maps an engine tile color to a terminal color.
func tileColor(c engine.Color) platformcore.Color {
	switch c {
	case engine.ColorRed:
		return platformcore.ColorRed
	case engine.ColorGreen:
		return platformcore.ColorGreen
	case engine.ColorYellow:
		return platformcore.ColorYellow
	case engine.ColorBlue:
		return platformcore.ColorBlue
	case engine.ColorMagenta:
		return platformcore.ColorMagenta
	case engine.ColorCyan:
		return platformcore.ColorCyan
	case engine.ColorOrange:
		return platformcore.ColorOrange
	case engine.ColorWhite:
		return platformcore.ColorWhite
	default:
		return platformcore.ColorDefault
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Enter: Select & Swap | P: Pause | R: Restart | Q: Quit"
}
