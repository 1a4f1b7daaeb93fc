package carto

import (
	"fmt"
	"strings"

	"github.com/giladgray/cartographist/internal/core"
	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/tile"
)

// Glyph offsets from a tile center, indexed by hex.Direction.
var edgeOffsets = [6][2]int{
	{1, -1},  // NE
	{2, 0},   // E
	{1, 1},   // SE
	{-1, 1},  // SW
	{-2, 0},  // W
	{-1, -1}, // NW
}

const (
	seedRune     = '◆'
	frontierRune = '·'
	previewCount = 5
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderPanel(dst)
	dst.DrawTextColored(0, g.screenH-1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws title, score and the progress bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "CARTOGRAPHIST", core.ColorBrightCyan)
	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	dst.DrawText(g.screenW-len(modeStr)-1, 0, modeStr)

	scoreStr := fmt.Sprintf("Score: %d", g.progress.Score)
	dst.DrawText(1, 1, scoreStr)
	if g.progress.LastPoints > 0 {
		dst.DrawTextColored(len(scoreStr)+2, 1, fmt.Sprintf("+%d", g.progress.LastPoints), core.ColorBrightGreen)
	}
	levelStr := fmt.Sprintf("Level %d", g.progress.Level)
	dst.DrawText(g.screenW-len(levelStr)-1, 1, levelStr)

	earned, target := g.progress.Toward()
	label := fmt.Sprintf(" %d/%d", earned, target)
	barW := max(g.screenW-len(label)-4, 4)
	dst.DrawText(1, 2, "[")
	filled := 0
	if target > 0 {
		filled = earned * barW / target
	}
	for i := range barW {
		if i < filled {
			dst.SetColored(2+i, 2, '█', core.ColorGreen)
		} else {
			dst.SetColored(2+i, 2, '░', core.ColorGray)
		}
	}
	dst.DrawText(2+barW, 2, "]"+label)
}

// renderBoard draws placed tiles, frontier cells, the cursor and the badge.
func (g *Game) renderBoard(dst *core.Screen) {
	for p := range g.grid.All() {
		x, y := g.view.cell(p.Coord)
		center := dominant(p.Tile.Terrain).Glyph()
		centerColor := dominant(p.Tile.Terrain).Color()
		if g.grid.IsSeed(p.Coord) {
			center, centerColor = seedRune, core.ColorBrightWhite
		}
		g.drawTile(dst, x, y, p.Tile.Terrain, center, centerColor)
	}

	for c := range g.frontier.All() {
		x, y := g.view.cell(c)
		g.put(dst, x, y, frontierRune, core.ColorGray)
	}

	g.renderCursor(dst)

	if g.badgeTicks > 0 {
		if last, ok := g.grid.Last(); ok {
			x, y := g.view.cell(last.Coord)
			badge := fmt.Sprintf("+%d", g.badgePoints)
			for i, r := range badge {
				g.put(dst, x-1+i, y, r, core.ColorBrightYellow)
			}
		}
	}
}

// renderCursor previews the head tile on a legal cell and marks the cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	x, y := g.view.cell(g.cursor)
	head, hasHead := g.stack.Head()
	legal := CanPlace(g.grid, g.cursor, hasHead) && !g.gameOver

	bracket := core.ColorRed
	if legal {
		bracket = core.ColorBrightWhite
		g.drawTile(dst, x, y, head.Terrain, '+', core.ColorBrightWhite)
	}
	g.put(dst, x-3, y, '[', bracket)
	g.put(dst, x+3, y, ']', bracket)
}

// drawTile draws the six edges around (x, y) plus a center rune.
func (g *Game) drawTile(dst *core.Screen, x, y int, edges tile.Edges, center rune, centerColor core.Color) {
	for _, d := range hex.Directions {
		off := edgeOffsets[d]
		t := edges[d]
		g.put(dst, x+off[0], y+off[1], t.Glyph(), t.Color())
	}
	g.put(dst, x, y, center, centerColor)
}

// put draws a rune only inside the board area.
func (g *Game) put(dst *core.Screen, x, y int, r rune, c core.Color) {
	if g.view.board.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// renderPanel draws the next tile, the stack count and upcoming tiles.
func (g *Game) renderPanel(dst *core.Screen) {
	px := g.view.board.Right() + 1
	py := hudHeight

	dst.DrawText(px, py, "Next")
	if head, ok := g.stack.Head(); ok {
		for _, d := range hex.Directions {
			off := edgeOffsets[d]
			dst.SetColored(px+3+off[0], py+2+off[1], head.Terrain[d].Glyph(), head.Terrain[d].Color())
		}
		dst.SetColored(px+3, py+2, '+', core.ColorBrightWhite)
		dst.DrawTextColored(px+7, py+2, fmt.Sprintf("%d seg", tile.Segments(head.Terrain)), core.ColorGray)
	}

	countColor := core.ColorDefault
	countStr := fmt.Sprintf("Stack: %d", g.stack.Len())
	switch {
	case g.stack.Len() == 0:
		countStr = "Stack: END"
		countColor = core.ColorRed
	case g.stack.Len() <= g.cfg.Stack.LowWarning:
		countColor = core.ColorRed
	}
	dst.DrawTextColored(px, py+4, countStr, countColor)

	upcoming := g.stack.Peek(previewCount + 1)
	for i, t := range upcoming {
		if i == 0 {
			continue
		}
		for j, e := range t.Terrain {
			dst.SetColored(px+j, py+5+i, e.Glyph(), e.Color())
		}
	}

	if g.cfg.Session.UndoLimit > 0 {
		dst.DrawTextColored(px, py+7+previewCount, fmt.Sprintf("Undo: %d", len(g.history)), core.ColorGray)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	centerX, centerY := g.view.board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		scoreStr := fmt.Sprintf("Score %d  Level %d", g.progress.Score, g.progress.Level)
		lines := []string{"MAP COMPLETE", scoreStr, "Press R to restart"}
		if len(g.history) > 0 {
			lines = append(lines, "U to undo")
		}
		g.drawOverlay(dst, centerX, centerY, lines...)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	hints := []string{"Arrows: Move", "Tab: Next cell", "E/Z: Rotate", "Space: Place", "U: Undo"}
	if g.mode == ModeEndless {
		hints = append(hints, "N: Draw")
	}
	return strings.Join(hints, " | ")
}

// dominant returns the terrain covering most edges. On a tie the terrain
// that reached the count first wins.
func dominant(edges tile.Edges) tile.Terrain {
	var counts [8]int
	best := edges[0]
	for _, t := range edges {
		counts[t]++
		if counts[t] > counts[best] {
			best = t
		}
	}
	return best
}
