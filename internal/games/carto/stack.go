package carto

import (
	"slices"

	"github.com/giladgray/cartographist/internal/tile"
)

// Stack is the ordered pile of tiles waiting to be placed.
// The head is offered next.
type Stack struct {
	tiles []tile.Tile
}

// Len returns the number of tiles left.
func (s *Stack) Len() int {
	return len(s.tiles)
}

// Head returns the next tile.
func (s *Stack) Head() (tile.Tile, bool) {
	if len(s.tiles) == 0 {
		return tile.Tile{}, false
	}
	return s.tiles[0], true
}

// Push appends tiles to the bottom of the stack.
func (s *Stack) Push(tiles ...tile.Tile) {
	s.tiles = append(s.tiles, tiles...)
}

// Pop removes and returns the head.
func (s *Stack) Pop() (tile.Tile, bool) {
	t, ok := s.Head()
	if ok {
		s.tiles = s.tiles[1:]
	}
	return t, ok
}

// RotateHead rotates the head tile clockwise by steps, keeping its ID.
func (s *Stack) RotateHead(steps int) bool {
	if len(s.tiles) == 0 {
		return false
	}
	s.tiles[0] = s.tiles[0].Rotated(steps)
	return true
}

// Tiles returns a copy of the stack contents, head first.
func (s *Stack) Tiles() []tile.Tile {
	return slices.Clone(s.tiles)
}

// Peek returns up to n tiles from the head without removing them.
func (s *Stack) Peek(n int) []tile.Tile {
	n = max(0, min(n, len(s.tiles)))
	return slices.Clone(s.tiles[:n])
}
