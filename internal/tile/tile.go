package tile

import (
	"math/rand"
	"sync/atomic"

	"github.com/giladgray/cartographist/internal/hex"
)

// Edges is the terrain of each edge, indexed by hex.Direction.
type Edges [6]Terrain

// Tile is a hex tile that has not necessarily been placed yet.
type Tile struct {
	// ID is unique per process and only used for stable identity.
	ID      uint64
	Terrain Edges
}

// Edge returns the terrain on the side facing d.
func (t Tile) Edge(d hex.Direction) Terrain {
	return t.Terrain[hex.Mod6(int(d))]
}

// Rotated returns a copy of the tile rotated clockwise by steps.
// The ID is preserved.
func (t Tile) Rotated(steps int) Tile {
	t.Terrain = Rotate(t.Terrain, steps)
	return t
}

// Uniform returns edges that all carry the same terrain.
func Uniform(t Terrain) Edges {
	return Edges{t, t, t, t, t, t}
}

// Rotate shifts the edge sequence clockwise by steps (mod 6).
// The terrain on edge i moves to edge i+steps.
func Rotate(terrain Edges, steps int) Edges {
	steps = hex.Mod6(steps)
	if steps == 0 {
		return terrain
	}
	var out Edges
	for i := range 6 {
		out[(i+steps)%6] = terrain[i]
	}
	return out
}

// Segments returns the number of contiguous terrain arcs around the tile.
// A uniform tile has one segment.
func Segments(terrain Edges) int {
	changes := 0
	for i := range 6 {
		if terrain[i] != terrain[(i+1)%6] {
			changes++
		}
	}
	if changes == 0 {
		return 1
	}
	return changes
}

// IDSource hands out monotonically increasing tile IDs.
// It is safe for concurrent use.
type IDSource struct {
	next atomic.Uint64
}

// NewIDSource creates a source whose first ID is start.
func NewIDSource(start uint64) *IDSource {
	s := &IDSource{}
	s.next.Store(start)
	return s
}

// Next returns a fresh ID.
func (s *IDSource) Next() uint64 {
	return s.next.Add(1) - 1
}

// Peek returns the ID the next call to Next will return.
func (s *IDSource) Peek() uint64 {
	return s.next.Load()
}

// Factory creates tiles with randomized edge segmentation.
type Factory struct {
	rng      *rand.Rand
	ids      *IDSource
	terrains []Terrain
}

// NewFactory creates a tile factory. An empty terrains list means AllTerrains.
func NewFactory(rng *rand.Rand, ids *IDSource, terrains []Terrain) *Factory {
	if len(terrains) == 0 {
		terrains = AllTerrains
	}
	return &Factory{
		rng:      rng,
		ids:      ids,
		terrains: terrains,
	}
}

// CreateTile generates a tile with between 1 and maxSegments terrain arcs.
//
// Each extra segment n (1-based) is kept with probability
// 1 - (0.8/maxSegments)*n and generation stops at the first rejection,
// so tiles with fewer arcs are more common. Segment counts that do not
// divide 6 fall back to a uniform tile.
func (f *Factory) CreateTile(maxSegments int) Tile {
	maxSegments = max(1, min(6, maxSegments))

	k := 1
	for n := 1; n < maxSegments; n++ {
		if f.rng.Float64() >= 1-(0.8/float64(maxSegments))*float64(n) {
			break
		}
		k++
	}
	if 6%k != 0 {
		k = 1
	}

	segments := make([]Terrain, k)
	for i := range segments {
		segments[i] = f.randomTerrain()
	}

	var edges Edges
	width := 6 / k
	for i := range 6 {
		edges[i] = segments[i/width]
	}

	return Tile{ID: f.ids.Next(), Terrain: edges}
}

// CreateTiles generates count independent tiles.
func (f *Factory) CreateTiles(count, maxSegments int) []Tile {
	tiles := make([]Tile, 0, max(count, 0))
	for range count {
		tiles = append(tiles, f.CreateTile(maxSegments))
	}
	return tiles
}

// IDs returns the factory's ID source.
func (f *Factory) IDs() *IDSource {
	return f.ids
}

func (f *Factory) randomTerrain() Terrain {
	return f.terrains[f.rng.Intn(len(f.terrains))]
}
