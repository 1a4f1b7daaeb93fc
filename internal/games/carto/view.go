package carto

import (
	"math"

	"github.com/giladgray/cartographist/internal/core"
	"github.com/giladgray/cartographist/internal/hex"
)

// Screen layout
const (
	hudHeight   = 3  // Title, score line, progress bar
	footHeight  = 1  // Controls hint
	panelWidth  = 18 // Stack preview on the right
	minScreenW  = 48
	minScreenH  = 16
	tileMarginX = 3 // Half glyph width plus the gap column
	tileMarginY = 2
)

// viewport maps the map plane onto the board area of the screen.
// camera is the coordinate drawn at the board's center.
type viewport struct {
	board  core.Rect
	camera hex.Coord
}

func newViewport(screenW, screenH int) viewport {
	return viewport{
		board: core.NewRect(0, hudHeight, max(screenW-panelWidth, 0), max(screenH-hudHeight-footHeight, 0)),
	}
}

// layout returns the terminal layout with the camera at the board center.
func (v viewport) layout() hex.Layout {
	cx, cy := v.board.Center()
	base := hex.TerminalLayout()
	ox, oy := base.PixelCenter(v.camera)
	return base.WithOrigin(float64(cx)-ox, float64(cy)-oy)
}

// cell returns the screen cell at the center of c.
func (v viewport) cell(c hex.Coord) (x, y int) {
	fx, fy := v.layout().PixelCenter(c)
	return int(math.Round(fx)), int(math.Round(fy))
}

// visible reports whether the whole glyph of c fits on the board.
func (v viewport) visible(c hex.Coord) bool {
	x, y := v.cell(c)
	inner := core.NewRect(
		v.board.X+tileMarginX, v.board.Y+tileMarginY-1,
		v.board.W-2*tileMarginX, v.board.H-2*tileMarginY+2,
	)
	return inner.Contains(x, y)
}

// follow recenters the camera on c when c would be drawn off the board.
func (v *viewport) follow(c hex.Coord) {
	if !v.visible(c) {
		v.camera = c
	}
}
