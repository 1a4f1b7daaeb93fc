package carto

import (
	"math/rand"

	"github.com/giladgray/cartographist/internal/grid"
	"github.com/giladgray/cartographist/internal/hex"
	"github.com/giladgray/cartographist/internal/tile"
)

// SeedGrid returns a grid holding the starting tiles. The first seed sits
// at the origin; the rest land on distinct random cells within radius of
// it and may or may not touch each other. count is clamped to the number
// of cells available.
func SeedGrid(f *tile.Factory, rng *rand.Rand, count, radius, maxSegments int) *grid.Grid {
	cells := hex.Disk(hex.Origin, radius)
	count = max(1, min(count, len(cells)))

	// Disk lists the origin somewhere in the middle; move it out of the pool.
	pool := make([]hex.Coord, 0, len(cells)-1)
	for _, c := range cells {
		if c != hex.Origin {
			pool = append(pool, c)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	placements := make([]grid.PlacedHex, 0, count)
	placements = append(placements, grid.PlacedHex{Coord: hex.Origin, Tile: f.CreateTile(maxSegments)})
	for _, c := range pool[:count-1] {
		placements = append(placements, grid.PlacedHex{Coord: c, Tile: f.CreateTile(maxSegments)})
	}
	return grid.New().Seed(placements...)
}
