// Package carto implements the hex tile-placement puzzle.
//
// The player extends a map by placing terrain tiles from a stack next to
// tiles already on the board. Matching edges earn points; crossing the
// level target refills the stack.
package carto

import (
	"math/rand"

	"github.com/giladgray/cartographist/internal/config"
	"github.com/giladgray/cartographist/internal/core"
	"github.com/giladgray/cartographist/internal/grid"
	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/registry"
	"github.com/giladgray/cartographist/internal/tile"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Fixed supply; the run ends when the stack is empty
	ModeEndless  Mode = "endless"  // Draw more tiles at any time
)

// tileIDs is shared by every session in the process and never reset,
// so a tile ID is never reused.
var tileIDs = tile.NewIDSource(1)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// move is an undo record: the state right before a placement.
type move struct {
	grid       *grid.Grid
	stack      []tile.Tile
	progress   Progress
	placements int
	coord      hex.Coord
}

// Game implements the tile-placement session.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg        config.CartoConfig
	pinned     bool // cfg was supplied by UseConfig
	params     ProgressionParams
	difficulty *config.DifficultyManager
	factory    *tile.Factory
	ids        *tile.IDSource

	grid       *grid.Grid
	frontier   *grid.Frontier
	stack      Stack
	progress   Progress
	placements int
	history    []move

	cursor hex.Coord
	view   viewport

	badgePoints int
	badgeTicks  int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a new campaign game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
		ids:  tileIDs,
	}
}

// NewEndless creates a new endless game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
		ids:  tileIDs,
	}
}

func init() {
	registry.Register("carto", func() registry.Game {
		return New()
	})
	registry.Register("carto_endless", func() registry.Game {
		return NewEndless()
	})
}

// UseConfig pins the configuration so Reset does not load it from disk.
func (g *Game) UseConfig(cfg config.CartoConfig) *Game {
	g.cfg = config.Normalize(cfg)
	g.pinned = true
	return g
}

// UseIDs replaces the process-wide tile ID source.
func (g *Game) UseIDs(ids *tile.IDSource) *Game {
	g.ids = ids
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "carto_endless"
	}
	return "carto"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Cartographist (Endless)"
	}
	return "Cartographist"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset starts a new run: fresh progress, a freshly seeded grid and a new
// stack. The tile ID source carries on from where it was.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0

	if !g.pinned {
		cfg, err := config.LoadCarto(configPath)
		if err != nil {
			cfg = config.DefaultCartoConfig()
		}
		// Apply difficulty preset if set
		config.ApplyCartoPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.params = ProgressionParams{
		InitialTarget: g.cfg.Progression.InitialTarget,
		GrowthFactor:  g.cfg.Progression.GrowthFactor,
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.factory = tile.NewFactory(g.rng, g.ids, parseTerrains(g.cfg.Tiles.Terrains))

	g.progress = ResetProgress(g.params)
	g.placements = 0
	g.history = nil
	g.grid = SeedGrid(g.factory, g.rng, g.cfg.Seed.Tiles, g.cfg.Seed.Radius, g.maxSegments())
	g.stack = Stack{}
	g.stack.Push(g.factory.CreateTiles(g.cfg.Stack.InitialSize, g.maxSegments())...)
	g.refreshFrontier()
	if c, ok := g.frontier.At(0); ok {
		g.cursor = c
	}

	g.badgePoints = 0
	g.badgeTicks = 0
	g.gameOver = false
	g.paused = false

	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.view = newViewport(g.screenW, g.screenH)
	g.checkScreenSize()
}

// parseTerrains converts config names, skipping unknown ones.
func parseTerrains(names []string) []tile.Terrain {
	var out []tile.Terrain
	for _, n := range names {
		if t, ok := tile.ParseTerrain(n); ok {
			out = append(out, t)
		}
	}
	return out
}

// maxSegments returns the segment cap for newly drawn tiles.
func (g *Game) maxSegments() int {
	return g.difficulty.MaxSegments(g.cfg.Tiles.MaxSegments, g.progress.Score, g.placements)
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.badgeTicks > 0 {
		g.badgeTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Undo is allowed after the last tile so a run can be rescued
	if in.Has(core.ActionUndo) {
		g.Undo()
	}

	// Restart is handled by the platform
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	placed := false

	if p := in.Pointer; p != nil {
		if c, ok := g.PointAt(p.X, p.Y); ok {
			g.cursor = c
			if p.Click {
				_, placed = g.Place(c)
			}
		}
	}

	switch {
	case in.Has(core.ActionUp):
		g.MoveCursor(hex.NE)
	case in.Has(core.ActionDown):
		g.MoveCursor(hex.SW)
	case in.Has(core.ActionLeft):
		g.MoveCursor(hex.W)
	case in.Has(core.ActionRight):
		g.MoveCursor(hex.E)
	case in.Has(core.ActionNext):
		g.CycleFrontier(1)
	case in.Has(core.ActionPrev):
		g.CycleFrontier(-1)
	}

	if in.Has(core.ActionRotate) {
		g.RotateHead(1)
	}
	if in.Has(core.ActionRotateBack) {
		g.RotateHead(-1)
	}
	if in.Has(core.ActionDraw) {
		g.Draw()
	}
	if in.Has(core.ActionConfirm) && !placed {
		_, placed = g.Place(g.cursor)
	}

	return core.StepResult{State: g.State(), Placed: placed}
}

// Place puts the head tile at c. The validity check, grid update, scoring
// and progress update happen together; an illegal placement changes nothing.
func (g *Game) Place(c hex.Coord) (points int, ok bool) {
	if g.gameOver {
		return 0, false
	}
	head, hasHead := g.stack.Head()
	if !CanPlace(g.grid, c, hasHead) {
		return 0, false
	}

	g.pushHistory(c)

	next := g.grid.Set(c, head)
	points = ScoreFor(next, c, head)
	prev := g.progress

	g.grid = next
	g.stack.Pop()
	g.progress = Add(prev, points, g.params)
	g.placements++

	if LeveledUp(prev, g.progress) {
		g.refill()
	}

	g.refreshFrontier()
	if nc, found := g.frontier.Nearest(c); found {
		g.cursor = nc
	}
	g.view.follow(g.cursor)

	g.badgePoints = points
	g.badgeTicks = g.cfg.Session.BadgeTicks

	if g.mode == ModeCampaign && g.stack.Len() == 0 {
		g.gameOver = true
	}
	return points, true
}

// pushHistory records the current state, dropping the oldest entry
// beyond the undo limit.
func (g *Game) pushHistory(c hex.Coord) {
	limit := g.cfg.Session.UndoLimit
	if limit <= 0 {
		return
	}
	g.history = append(g.history, move{
		grid:       g.grid,
		stack:      g.stack.Tiles(),
		progress:   g.progress,
		placements: g.placements,
		coord:      c,
	})
	if len(g.history) > limit {
		g.history = g.history[len(g.history)-limit:]
	}
}

// Undo restores the state before the last placement.
func (g *Game) Undo() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	last := g.history[n-1]
	g.history = g.history[:n-1]

	g.grid = last.grid
	g.stack = Stack{tiles: last.stack}
	g.progress = last.progress
	g.placements = last.placements
	g.gameOver = false
	g.badgeTicks = 0

	g.refreshFrontier()
	g.cursor = last.coord
	g.view.follow(g.cursor)
	return true
}

// CanUndo reports how many placements can still be undone.
func (g *Game) CanUndo() int {
	return len(g.history)
}

// Draw appends a batch of tiles. Only endless mode allows drawing on demand.
func (g *Game) Draw() bool {
	if g.mode != ModeEndless || g.gameOver {
		return false
	}
	g.refill()
	return true
}

// refill appends one batch of tiles to the stack.
func (g *Game) refill() {
	g.stack.Push(g.factory.CreateTiles(g.cfg.Stack.BatchSize, g.maxSegments())...)
}

// RotateHead rotates the next tile clockwise by steps.
func (g *Game) RotateHead(steps int) bool {
	return g.stack.RotateHead(steps)
}

// MoveCursor moves the cursor one cell in direction d.
func (g *Game) MoveCursor(d hex.Direction) {
	g.cursor = g.cursor.Neighbor(d)
	g.view.follow(g.cursor)
}

// CycleFrontier jumps the cursor to another legal cell. From a cell that
// is not on the frontier it goes to the nearest one.
func (g *Game) CycleFrontier(delta int) {
	i := g.frontier.Index(g.cursor)
	var (
		c  hex.Coord
		ok bool
	)
	if i < 0 {
		c, ok = g.frontier.Nearest(g.cursor)
	} else {
		c, ok = g.frontier.At(i + delta)
	}
	if ok {
		g.cursor = c
		g.view.follow(g.cursor)
	}
}

// PointAt converts a screen cell to the map coordinate drawn there.
// ok is false when the cell is outside the board or the hex under it
// is not fully drawn.
func (g *Game) PointAt(x, y int) (c hex.Coord, ok bool) {
	if !g.view.board.Contains(x, y) {
		return hex.Coord{}, false
	}
	c = g.view.layout().FromPixel(float64(x), float64(y))
	return c, g.view.visible(c)
}

// Cursor returns the highlighted coordinate.
func (g *Game) Cursor() hex.Coord {
	return g.cursor
}

// Grid returns the current grid snapshot.
func (g *Game) Grid() *grid.Grid {
	return g.grid
}

// Frontier returns the cells where the next tile may go.
func (g *Game) Frontier() *grid.Frontier {
	return g.frontier
}

// Stack returns the remaining tiles, head first.
func (g *Game) Stack() []tile.Tile {
	return g.stack.Tiles()
}

// Progress returns the score and level state.
func (g *Game) Progress() Progress {
	return g.progress
}

// Placements returns how many tiles the player has placed this run.
func (g *Game) Placements() int {
	return g.placements
}

// Resize adapts the viewport to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	camera := g.view.camera
	g.view = newViewport(w, h)
	g.view.camera = camera
	g.view.follow(g.cursor)
	g.checkScreenSize()
}

func (g *Game) refreshFrontier() {
	g.frontier = grid.EmptyNeighbors(g.grid)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.progress.Score,
		Level:    g.progress.Level,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
