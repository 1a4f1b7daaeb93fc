package grid

import (
	"iter"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/giladgray/cartographist/internal/hex"
)

// Frontier is the set of empty cells adjacent to at least one occupied cell.
// Coordinates keep the order they were discovered in.
type Frontier struct {
	seen   mapset.Set[hex.Coord]
	coords []hex.Coord
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: mapset.New[hex.Coord]()}
}

// EmptyNeighbors computes the placement frontier of r. Cells are visited in
// the reader's order and each cell's neighbors in canonical direction order;
// a cell adjacent to several tiles appears once.
func EmptyNeighbors(r Reader) *Frontier {
	f := NewFrontier()
	for p := range r.All() {
		for _, nb := range p.Coord.Neighbors() {
			if !r.Has(nb) {
				f.Add(nb)
			}
		}
	}
	return f
}

// Add inserts c if it is not already present.
func (f *Frontier) Add(c hex.Coord) {
	if f.seen.Has(c) {
		return
	}
	f.seen.Put(c)
	f.coords = append(f.coords, c)
}

// Has reports whether c is on the frontier.
func (f *Frontier) Has(c hex.Coord) bool {
	return f.seen.Has(c)
}

// Len returns the number of frontier cells.
func (f *Frontier) Len() int {
	return len(f.coords)
}

// Coords returns a copy of the frontier cells in discovery order.
func (f *Frontier) Coords() []hex.Coord {
	out := make([]hex.Coord, len(f.coords))
	copy(out, f.coords)
	return out
}

// All yields frontier cells in discovery order.
func (f *Frontier) All() iter.Seq[hex.Coord] {
	return slices.Values(f.coords)
}

// At returns the i-th cell, wrapping around in both directions.
func (f *Frontier) At(i int) (hex.Coord, bool) {
	n := len(f.coords)
	if n == 0 {
		return hex.Coord{}, false
	}
	i %= n
	if i < 0 {
		i += n
	}
	return f.coords[i], true
}

// Index returns the position of c, or -1.
func (f *Frontier) Index(c hex.Coord) int {
	for i, fc := range f.coords {
		if fc == c {
			return i
		}
	}
	return -1
}

// Nearest returns the frontier cell closest to c. Ties go to the earlier cell.
func (f *Frontier) Nearest(c hex.Coord) (hex.Coord, bool) {
	best, bestDist := hex.Coord{}, -1
	for _, fc := range f.coords {
		d := hex.Distance(c, fc)
		if bestDist < 0 || d < bestDist {
			best, bestDist = fc, d
		}
	}
	return best, bestDist >= 0
}

var _ Container = (*Frontier)(nil)
