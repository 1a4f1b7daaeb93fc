package carto

import (
	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/tile"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "campaign" or "endless"
	Progress   Progress
	Tiles      int         // Placed tiles, seeds included
	Seeds      []hex.Coord // Seed coordinates in placement order
	Terrain    []tile.Edges
	Stack      []tile.Edges // Remaining tiles, head first
	Frontier   int
	Cursor     hex.Coord
	Placements int
	Undo       int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
// Tile IDs are left out so runs with the same seed compare equal.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	terrain := make([]tile.Edges, 0, g.grid.Len())
	for p := range g.grid.All() {
		terrain = append(terrain, p.Tile.Terrain)
	}
	stack := make([]tile.Edges, 0, g.stack.Len())
	for _, t := range g.stack.tiles {
		stack = append(stack, t.Terrain)
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Progress:   g.progress,
		Tiles:      g.grid.Len(),
		Seeds:      g.grid.Seeds(),
		Terrain:    terrain,
		Stack:      stack,
		Frontier:   g.frontier.Len(),
		Cursor:     g.cursor,
		Placements: g.placements,
		Undo:       len(g.history),
		State:      state,
	}
}
