// Package grid stores placed hex tiles in a persistent map.
//
// Every Set returns a new Grid that shares structure with the previous one,
// so earlier snapshots stay valid for undo and history.
package grid

import (
	"hash/maphash"
	"iter"

	"github.com/benbjohnson/immutable"

	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/tile"
)

// PlacedHex is a tile bound to a coordinate.
type PlacedHex struct {
	Coord hex.Coord
	Tile  tile.Tile
}

// Container is the capability set shared by Grid and Frontier.
type Container interface {
	Has(c hex.Coord) bool
	Len() int
	Coords() []hex.Coord
}

// Reader is a read-only view of placed tiles.
// Placement and scoring accept a Reader so they never mutate the grid.
type Reader interface {
	Container
	Get(c hex.Coord) (PlacedHex, bool)
	All() iter.Seq[PlacedHex]
}

// Grid is an immutable set of placed tiles keyed by coordinate.
// The zero value is not usable; call New.
type Grid struct {
	cells *immutable.Map[hex.Coord, tile.Tile]
	order *immutable.List[hex.Coord]
	seeds *immutable.List[hex.Coord]
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{
		cells: immutable.NewMap[hex.Coord, tile.Tile](coordHasher{seed: hashSeed}),
		order: immutable.NewList[hex.Coord](),
		seeds: immutable.NewList[hex.Coord](),
	}
}

// Has reports whether c is occupied.
func (g *Grid) Has(c hex.Coord) bool {
	_, ok := g.cells.Get(c)
	return ok
}

// Get returns the tile placed at c.
func (g *Grid) Get(c hex.Coord) (PlacedHex, bool) {
	t, ok := g.cells.Get(c)
	if !ok {
		return PlacedHex{}, false
	}
	return PlacedHex{Coord: c, Tile: t}, true
}

// Set returns a new grid with t placed at c. An existing tile at c is
// replaced in place and keeps its insertion position. The receiver is
// never modified.
func (g *Grid) Set(c hex.Coord, t tile.Tile) *Grid {
	next := &Grid{
		cells: g.cells.Set(c, t),
		order: g.order,
		seeds: g.seeds,
	}
	if !g.Has(c) {
		next.order = g.order.Append(c)
	}
	return next
}

// Seed returns a new grid with the given tiles placed as seeds.
// Seeds bypass the neighbor rule and are recorded separately.
func (g *Grid) Seed(placements ...PlacedHex) *Grid {
	next := g
	for _, p := range placements {
		isNew := !next.Has(p.Coord)
		next = next.Set(p.Coord, p.Tile)
		if isNew {
			next.seeds = next.seeds.Append(p.Coord)
		}
	}
	return next
}

// Len returns the number of placed tiles.
func (g *Grid) Len() int {
	return g.cells.Len()
}

// All yields placed tiles in insertion order.
func (g *Grid) All() iter.Seq[PlacedHex] {
	return func(yield func(PlacedHex) bool) {
		for i := range g.order.Len() {
			c := g.order.Get(i)
			t, _ := g.cells.Get(c)
			if !yield(PlacedHex{Coord: c, Tile: t}) {
				return
			}
		}
	}
}

// Coords returns occupied coordinates in insertion order.
func (g *Grid) Coords() []hex.Coord {
	return listSlice(g.order)
}

// Last returns the most recently inserted tile.
func (g *Grid) Last() (PlacedHex, bool) {
	n := g.order.Len()
	if n == 0 {
		return PlacedHex{}, false
	}
	return g.Get(g.order.Get(n - 1))
}

// Seeds returns the coordinates placed at game start.
func (g *Grid) Seeds() []hex.Coord {
	return listSlice(g.seeds)
}

// IsSeed reports whether c was placed as a seed.
func (g *Grid) IsSeed(c hex.Coord) bool {
	for i := range g.seeds.Len() {
		if g.seeds.Get(i) == c {
			return true
		}
	}
	return false
}

// OccupiedNeighbors counts occupied cells adjacent to c.
func OccupiedNeighbors(r Container, c hex.Coord) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if r.Has(nb) {
			n++
		}
	}
	return n
}

func listSlice(l *immutable.List[hex.Coord]) []hex.Coord {
	out := make([]hex.Coord, 0, l.Len())
	itr := l.Iterator()
	for !itr.Done() {
		_, c := itr.Next()
		out = append(out, c)
	}
	return out
}

var hashSeed = maphash.MakeSeed()

// coordHasher hashes axial coordinates for the persistent map.
type coordHasher struct {
	seed maphash.Seed
}

func (h coordHasher) Hash(c hex.Coord) uint32 {
	return uint32(maphash.Comparable(h.seed, c))
}

func (h coordHasher) Equal(a, b hex.Coord) bool {
	return a == b
}

var _ Reader = (*Grid)(nil)
