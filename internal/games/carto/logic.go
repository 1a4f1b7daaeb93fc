package carto

import (
	"github.com/giladgray/cartographist/internal/grid"
	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/tile"
)

// CanPlace reports whether a tile may be placed at c: the stock must not be
// empty, c must be free and at least one neighbor of c must be occupied.
// Every placement path goes through this check.
func CanPlace(r grid.Container, c hex.Coord, stockNonEmpty bool) bool {
	if !stockNonEmpty || r.Has(c) {
		return false
	}
	return grid.OccupiedNeighbors(r, c) > 0
}

// EdgesMatch reports whether a's edge facing d carries the same terrain as
// b's edge facing back towards a.
func EdgesMatch(d hex.Direction, a, b tile.Tile) bool {
	return a.Edge(d) == b.Edge(d.Opposite())
}

// MatchCount counts occupied neighbors of c whose touching edge matches t.
func MatchCount(r grid.Reader, c hex.Coord, t tile.Tile) int {
	m := 0
	for _, d := range hex.Directions {
		nb, ok := r.Get(c.Neighbor(d))
		if ok && EdgesMatch(d, t, nb.Tile) {
			m++
		}
	}
	return m
}

// ScoreFor returns 1 + m² where m is the number of matching neighbors.
// r must already contain t at c.
func ScoreFor(r grid.Reader, c hex.Coord, t tile.Tile) int {
	m := MatchCount(r, c, t)
	return 1 + m*m
}
