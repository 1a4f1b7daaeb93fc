package carto

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/giladgray/cartographist/internal/config"
	"github.com/giladgray/cartographist/internal/core"
	"github.com/giladgray/cartographist/internal/grid"
	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/registry"
	"github.com/giladgray/cartographist/internal/tile"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 30,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, mode Mode, mutate func(*config.CartoConfig)) *Game {
	t.Helper()
	cfg := config.DefaultCartoConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New()
	if mode == ModeEndless {
		g = NewEndless()
	}
	g.UseConfig(cfg).UseIDs(tile.NewIDSource(1))
	g.Reset(testRuntime(42))
	return g
}

// setBoard replaces the seeded grid and stack with known contents.
func setBoard(g *Game, gr *grid.Grid, stack ...tile.Tile) {
	g.grid = gr
	g.stack = Stack{}
	g.stack.Push(stack...)
	g.refreshFrontier()
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"carto", "carto_endless"} {
		game, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("ID() = %q, want %q", game.ID(), id)
		}
	}
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	snap := g.Snapshot()

	if snap.Progress != ResetProgress(DefaultProgression()) {
		t.Errorf("Progress = %+v", snap.Progress)
	}
	if snap.Tiles != 4 || len(snap.Seeds) != 4 {
		t.Errorf("seeded %d tiles / %d seeds, want 4", snap.Tiles, len(snap.Seeds))
	}
	if snap.Seeds[0] != hex.Origin {
		t.Errorf("first seed = %v, want origin", snap.Seeds[0])
	}
	for _, c := range snap.Seeds {
		if hex.Distance(hex.Origin, c) > 3 {
			t.Errorf("seed %v outside radius", c)
		}
	}
	if len(snap.Stack) != 10 {
		t.Errorf("stack = %d tiles, want 10", len(snap.Stack))
	}
	if !g.frontier.Has(snap.Cursor) {
		t.Errorf("cursor %v not on the frontier", snap.Cursor)
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %s", snap.State)
	}
}

func TestSeedGridDistinct(t *testing.T) {
	f := tile.NewFactory(rand.New(rand.NewSource(3)), tile.NewIDSource(1), nil)
	g := SeedGrid(f, rand.New(rand.NewSource(3)), config.MaxSeedTiles, 2, 3)

	if g.Len() != config.MaxSeedTiles {
		t.Errorf("Len() = %d, want %d", g.Len(), config.MaxSeedTiles)
	}
	if len(g.Seeds()) != g.Len() {
		t.Error("every seeded tile should be recorded as a seed")
	}

	// Radius 0 leaves room for the origin only
	small := SeedGrid(f, rand.New(rand.NewSource(3)), 5, 0, 3)
	if small.Len() != 1 || !small.Has(hex.Origin) {
		t.Errorf("radius 0 seeded %v", small.Coords())
	}
}

func TestDeterministicReset(t *testing.T) {
	a := newTestGame(t, ModeCampaign, nil)
	b := newTestGame(t, ModeCampaign, nil)

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("same seed produced different games")
	}

	c := New().UseConfig(config.DefaultCartoConfig()).UseIDs(tile.NewIDSource(1))
	c.Reset(testRuntime(43))
	if reflect.DeepEqual(a.Snapshot().Terrain, c.Snapshot().Terrain) &&
		reflect.DeepEqual(a.Snapshot().Stack, c.Snapshot().Stack) {
		t.Error("different seeds produced identical games")
	}
}

func TestTileIDsSurviveReset(t *testing.T) {
	ids := tile.NewIDSource(1)
	g := New().UseConfig(config.DefaultCartoConfig()).UseIDs(ids)

	g.Reset(testRuntime(1))
	first := ids.Peek()
	g.Reset(testRuntime(1))

	if ids.Peek() <= first {
		t.Errorf("ID source went from %d to %d across reset", first, ids.Peek())
	}
	head, _ := g.stack.Head()
	if head.ID < first {
		t.Errorf("tile ID %d reused after reset", head.ID)
	}
}

func TestPlaceScoresAndConsumes(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	base := grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Plain)})
	setBoard(g, base, uniform(2, tile.Plain), uniform(3, tile.Water))

	points, ok := g.Place(hex.Origin.Neighbor(hex.NE))
	if !ok || points != 2 {
		t.Fatalf("Place = %d, %v, want 2, true", points, ok)
	}
	if g.stack.Len() != 1 {
		t.Errorf("stack = %d, want 1", g.stack.Len())
	}
	if head, _ := g.stack.Head(); head.ID != 3 {
		t.Errorf("head ID = %d, want 3", head.ID)
	}
	if g.progress.Score != 2 || g.progress.LastPoints != 2 {
		t.Errorf("progress = %+v", g.progress)
	}
	if base.Len() != 1 {
		t.Error("placement mutated the previous grid")
	}
	if !g.frontier.Has(g.cursor) {
		t.Errorf("cursor %v not moved to the frontier", g.cursor)
	}
	if g.badgePoints != 2 || g.badgeTicks == 0 {
		t.Error("badge not shown after placement")
	}
}

func TestPlaceIllegalChangesNothing(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Plain)}), uniform(2, tile.Plain))
	before := g.Snapshot()

	for _, c := range []hex.Coord{hex.Origin, hex.C(5, 5)} {
		if _, ok := g.Place(c); ok {
			t.Errorf("Place(%v) should fail", c)
		}
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("illegal placement changed state")
	}
}

func TestPlaceLevelUpRefills(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.CartoConfig) {
		c.Progression.InitialTarget = 2
		c.Stack.BatchSize = 5
	})
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Forest)}),
		uniform(2, tile.Forest), uniform(3, tile.Forest))

	if _, ok := g.Place(hex.C(1, 0)); !ok {
		t.Fatal("placement failed")
	}
	if g.progress.Level != 2 {
		t.Fatalf("Level = %d, want 2", g.progress.Level)
	}
	// One consumed, five added
	if g.stack.Len() != 6 {
		t.Errorf("stack = %d, want 6", g.stack.Len())
	}
}

func TestCampaignEndsOnEmptyStack(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Plain)}), uniform(2, tile.Water))

	if _, ok := g.Place(hex.C(1, 0)); !ok {
		t.Fatal("placement failed")
	}
	if !g.State().GameOver {
		t.Fatal("campaign should end when the stack runs out")
	}
	if g.Draw() {
		t.Error("campaign should not allow drawing")
	}
	if _, ok := g.Place(hex.C(-1, 0)); ok {
		t.Error("placement after game over")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("State = %s", g.Snapshot().State)
	}
}

func TestEndlessDrawsOnDemand(t *testing.T) {
	g := newTestGame(t, ModeEndless, nil)
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Plain)}), uniform(2, tile.Water))

	if _, ok := g.Place(hex.C(1, 0)); !ok {
		t.Fatal("placement failed")
	}
	if g.State().GameOver {
		t.Fatal("endless mode should not end on an empty stack")
	}
	if CanPlace(g.grid, hex.C(-1, 0), g.stack.Len() > 0) {
		t.Error("placing with an empty stack should be illegal")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionDraw)
	g.Step(in)
	if g.stack.Len() != 10 {
		t.Errorf("stack after draw = %d, want 10", g.stack.Len())
	}
}

func TestUndo(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.CartoConfig) {
		c.Session.UndoLimit = 2
	})
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Plain)}),
		uniform(2, tile.Plain), uniform(3, tile.Plain), uniform(4, tile.Plain), uniform(5, tile.Plain))
	start := g.Snapshot()

	coords := []hex.Coord{hex.C(1, 0), hex.C(2, 0), hex.C(3, 0)}
	var snaps []Snapshot
	for _, c := range coords {
		snaps = append(snaps, g.Snapshot())
		if _, ok := g.Place(c); !ok {
			t.Fatalf("Place(%v) failed", c)
		}
	}

	if g.CanUndo() != 2 {
		t.Fatalf("CanUndo() = %d, want 2", g.CanUndo())
	}

	if !g.Undo() {
		t.Fatal("first undo failed")
	}
	got := g.Snapshot()
	if got.Tiles != snaps[2].Tiles || got.Progress != snaps[2].Progress ||
		!reflect.DeepEqual(got.Stack, snaps[2].Stack) {
		t.Errorf("undo did not restore the previous state: %+v", got)
	}
	if got.Cursor != coords[2] {
		t.Errorf("cursor = %v, want %v", got.Cursor, coords[2])
	}

	g.Undo()
	if g.Undo() {
		t.Error("undo beyond the limit should fail")
	}
	if g.grid.Len() != start.Tiles+1 {
		t.Errorf("grid has %d tiles, want %d", g.grid.Len(), start.Tiles+1)
	}
}

func TestUndoDisabled(t *testing.T) {
	g := newTestGame(t, ModeCampaign, func(c *config.CartoConfig) {
		c.Session.UndoLimit = 0
	})
	g.Place(g.cursor)
	if g.Undo() {
		t.Error("undo should be disabled")
	}
}

func TestRotateHead(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	head := tile.Tile{ID: 7, Terrain: tile.Edges{tile.Water, tile.Plain, tile.Plain, tile.Plain, tile.Plain, tile.Plain}}
	setBoard(g, g.grid, head)

	in := core.NewInputFrame()
	in.Set(core.ActionRotate)
	g.Step(in)

	got, _ := g.stack.Head()
	if got.ID != 7 || got.Terrain[hex.E] != tile.Water {
		t.Errorf("rotated head = %+v", got)
	}

	in.Clear()
	in.Set(core.ActionRotateBack)
	g.Step(in)
	if got, _ := g.stack.Head(); got.Terrain != head.Terrain {
		t.Errorf("rotate back = %v, want %v", got.Terrain, head.Terrain)
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	start := g.cursor

	g.MoveCursor(hex.E)
	if g.cursor != start.Neighbor(hex.E) {
		t.Errorf("cursor = %v", g.cursor)
	}

	g.CycleFrontier(1)
	if !g.frontier.Has(g.cursor) {
		t.Errorf("CycleFrontier left cursor off the frontier at %v", g.cursor)
	}

	i := g.frontier.Index(g.cursor)
	g.CycleFrontier(1)
	g.CycleFrontier(-1)
	if g.frontier.Index(g.cursor) != i {
		t.Error("Next then Prev should return to the same cell")
	}
}

func TestConfirmPlacesAtCursor(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	target := g.cursor
	n := g.stack.Len()

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(in)

	if !res.Placed || !g.grid.Has(target) {
		t.Fatalf("Confirm did not place at %v", target)
	}
	if g.stack.Len() != n-1 {
		t.Errorf("stack = %d, want %d", g.stack.Len(), n-1)
	}
	if res.State.Score < 1 {
		t.Errorf("score = %d, want >= 1", res.State.Score)
	}
}

func TestPointerClickPlaces(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	target, _ := g.frontier.At(2)
	x, y := g.view.cell(target)

	if got, ok := g.PointAt(x, y); !ok || got != target {
		t.Fatalf("PointAt(%d,%d) = %v, %v, want %v", x, y, got, ok, target)
	}

	in := core.NewInputFrame()
	in.SetPointer(x+1, y, true)
	res := g.Step(in)
	if !res.Placed || !g.grid.Has(target) {
		t.Errorf("click at (%d,%d) did not place at %v", x+1, y, target)
	}
}

func TestPointerClickOffFrontierIgnored(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	x, y := g.view.cell(hex.Origin)
	n := g.grid.Len()

	in := core.NewInputFrame()
	in.SetPointer(x, y, true)
	if res := g.Step(in); res.Placed || g.grid.Len() != n {
		t.Error("click on an occupied cell placed a tile")
	}
}

func TestPointerOutsideBoardIgnored(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	cx, _ := g.view.board.Center()

	// Make the hex under the title row a legal placement
	hidden := g.view.layout().FromPixel(float64(cx), 0)
	setBoard(g, grid.New().Set(hidden.Neighbor(hex.SE), uniform(1, tile.Plain)), uniform(2, tile.Plain))
	if !CanPlace(g.grid, hidden, true) {
		t.Fatalf("%v should be on the frontier", hidden)
	}
	cursor := g.Cursor()

	tests := []struct {
		name string
		x, y int
	}{
		{"hud title row", cx, 0},
		{"stack panel", g.view.board.Right() + 2, g.view.board.Y + 2},
		{"footer", cx, g.view.board.Bottom()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := g.grid.Len()
			if _, ok := g.PointAt(tt.x, tt.y); ok {
				t.Errorf("PointAt(%d,%d) resolved outside the board", tt.x, tt.y)
			}
			in := core.NewInputFrame()
			in.SetPointer(tt.x, tt.y, true)
			if res := g.Step(in); res.Placed || g.grid.Len() != n || g.grid.Has(hidden) {
				t.Errorf("click at (%d,%d) placed a tile", tt.x, tt.y)
			}
			if g.Cursor() != cursor {
				t.Errorf("cursor moved to %v", g.Cursor())
			}
		})
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	if res := g.Step(confirm); res.Placed {
		t.Error("placed while paused")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New().UseConfig(config.DefaultCartoConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})

	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Error("small screen should pause the game")
	}

	s := core.NewScreen(20, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "Window too small") {
		t.Error("missing too-small message")
	}
}

func TestRenderShowsBoard(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	s := core.NewScreen(80, 30)
	g.Render(s)
	out := s.String()

	for _, want := range []string{"CARTOGRAPHIST", "Score: 0", "Level 1", "Stack: 10", "Next"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	x, y := g.view.cell(hex.Origin)
	if s.Get(x, y) != seedRune {
		t.Errorf("origin center = %q, want seed marker", s.Get(x, y))
	}
	cx, cy := g.view.cell(g.cursor)
	if s.Get(cx-3, cy) != '[' || s.Get(cx+3, cy) != ']' {
		t.Error("cursor brackets missing")
	}
}

func TestRenderEdgeColors(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Water)}), uniform(2, tile.Plain))
	g.cursor = hex.C(4, 0)

	s := core.NewScreen(80, 30)
	g.Render(s)

	x, y := g.view.cell(hex.Origin)
	cell := s.GetCell(x+2, y)
	if cell.Rune != tile.Water.Glyph() || cell.Color != tile.Water.Color() {
		t.Errorf("E edge = %+v", cell)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	setBoard(g, grid.New().Seed(grid.PlacedHex{Coord: hex.Origin, Tile: uniform(1, tile.Plain)}), uniform(2, tile.Plain))
	g.Place(hex.C(1, 0))

	s := core.NewScreen(80, 30)
	g.Render(s)
	if !strings.Contains(s.String(), "MAP COMPLETE") {
		t.Error("missing game over overlay")
	}
}

func TestViewFollowsCursor(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	for range 20 {
		g.MoveCursor(hex.E)
	}
	if !g.view.visible(g.cursor) {
		t.Errorf("cursor %v scrolled off the board", g.cursor)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newTestGame(t, ModeCampaign, nil)
	if _, ok := g.Place(g.Cursor()); !ok {
		t.Fatal("initial placement failed")
	}
	before := g.Snapshot()

	g.Resize(30, 10)
	if !g.State().Paused {
		t.Error("small resize should pause")
	}
	g.Resize(120, 40)
	if g.State().Paused {
		t.Error("large resize should resume")
	}

	after := g.Snapshot()
	if after.Tiles != before.Tiles || after.Progress != before.Progress || g.Placements() != 1 {
		t.Errorf("resize changed the run: %+v -> %+v", before, after)
	}
}
