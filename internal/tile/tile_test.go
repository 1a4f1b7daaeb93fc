package tile

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/giladgray/cartographist/internal/hex"
)

func newTestFactory(seed int64) *Factory {
	return NewFactory(rand.New(rand.NewSource(seed)), NewIDSource(0), nil)
}

func TestRotateIdentity(t *testing.T) {
	edges := Edges{Plain, Desert, Forest, Mountain, Water, Plain}

	if Rotate(edges, 0) != edges {
		t.Error("Rotate(t, 0) should return t")
	}
	if Rotate(edges, 6) != edges {
		t.Error("Rotate(t, 6) should return t")
	}

	r := edges
	for range 6 {
		r = Rotate(r, 1)
	}
	if r != edges {
		t.Errorf("rotating 6 times = %v, want %v", r, edges)
	}
}

func TestRotateComposes(t *testing.T) {
	edges := Edges{Plain, Desert, Forest, Mountain, Water, Forest}

	for a := -7; a <= 7; a++ {
		for b := -7; b <= 7; b++ {
			got := Rotate(Rotate(edges, a), b)
			want := Rotate(edges, hex.Mod6(a+b))
			if got != want {
				t.Errorf("Rotate(Rotate(t, %d), %d) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestRotateDirection(t *testing.T) {
	edges := Edges{Water, Plain, Plain, Plain, Plain, Plain}

	rotated := Rotate(edges, 1)
	if rotated[hex.E] != Water {
		t.Errorf("clockwise rotation should move NE edge to E, got %v", rotated)
	}

	back := Rotate(edges, -1)
	if back[hex.NW] != Water {
		t.Errorf("counter-clockwise rotation should move NE edge to NW, got %v", back)
	}
}

func TestRotatedKeepsID(t *testing.T) {
	tl := Tile{ID: 42, Terrain: Edges{Water, Plain, Plain, Plain, Plain, Plain}}
	r := tl.Rotated(2)

	if r.ID != 42 {
		t.Errorf("Rotated ID = %d, want 42", r.ID)
	}
	if r.Edge(hex.SE) != Water {
		t.Errorf("Rotated(2) SE edge = %v, want water", r.Edge(hex.SE))
	}
}

func TestCreateTileSingleSegmentIsUniform(t *testing.T) {
	f := newTestFactory(1)

	for range 200 {
		tl := f.CreateTile(1)
		for i := 1; i < 6; i++ {
			if tl.Terrain[i] != tl.Terrain[0] {
				t.Fatalf("CreateTile(1) produced non-uniform tile %v", tl.Terrain)
			}
		}
	}
}

func TestCreateTileSegmentsAreContiguous(t *testing.T) {
	f := newTestFactory(7)

	for _, maxSeg := range []int{2, 3, 4, 5, 6, 9} {
		for range 300 {
			tl := f.CreateTile(maxSeg)
			if !isEvenSegmentation(tl.Terrain, maxSegmentsAllowed(maxSeg)) {
				t.Fatalf("CreateTile(%d) produced %v", maxSeg, tl.Terrain)
			}
		}
	}
}

// isEvenSegmentation reports whether edges are k equal-width runs starting
// at index 0 for some k that divides 6 and is at most limit.
func isEvenSegmentation(edges Edges, limit int) bool {
	for _, k := range []int{1, 2, 3, 6} {
		if k > limit {
			break
		}
		width := 6 / k
		ok := true
		for i := range 6 {
			if edges[i] != edges[(i/width)*width] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func maxSegmentsAllowed(maxSeg int) int {
	maxSeg = min(maxSeg, 6)
	for k := maxSeg; k > 1; k-- {
		if 6%k == 0 {
			return k
		}
	}
	return 1
}

func TestCreateTileFavorsFewSegments(t *testing.T) {
	f := newTestFactory(99)

	counts := make(map[int]int)
	for range 2000 {
		counts[Segments(f.CreateTile(3).Terrain)]++
	}

	if counts[1] <= counts[3] {
		t.Errorf("expected more single-arc tiles than three-arc tiles, got %v", counts)
	}
}

func TestCreateTilesAssignsIncreasingIDs(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(3)), NewIDSource(100), nil)

	tiles := f.CreateTiles(10, 3)
	if len(tiles) != 10 {
		t.Fatalf("CreateTiles(10) returned %d tiles", len(tiles))
	}
	for i, tl := range tiles {
		if tl.ID != uint64(100+i) {
			t.Errorf("tile %d ID = %d, want %d", i, tl.ID, 100+i)
		}
	}
	if f.IDs().Peek() != 110 {
		t.Errorf("Peek() = %d, want 110", f.IDs().Peek())
	}
}

func TestCreateTilesZeroCount(t *testing.T) {
	f := newTestFactory(3)
	if got := f.CreateTiles(0, 3); len(got) != 0 {
		t.Errorf("CreateTiles(0) returned %d tiles", len(got))
	}
}

func TestFactoryRestrictedTerrains(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(5)), NewIDSource(0), []Terrain{Forest})

	for range 50 {
		if tl := f.CreateTile(6); tl.Terrain != Uniform(Forest) {
			t.Fatalf("single-terrain factory produced %v", tl.Terrain)
		}
	}
}

func TestDeterministicFactory(t *testing.T) {
	a := newTestFactory(12345).CreateTiles(20, 3)
	b := newTestFactory(12345).CreateTiles(20, 3)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different tile %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestIDSourceConcurrent(t *testing.T) {
	ids := NewIDSource(0)

	var wg sync.WaitGroup
	seen := make(chan uint64, 1000)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				seen <- ids.Next()
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[uint64]bool)
	for id := range seen {
		if unique[id] {
			t.Fatalf("duplicate ID %d", id)
		}
		unique[id] = true
	}
	if len(unique) != 1000 {
		t.Errorf("got %d unique IDs, want 1000", len(unique))
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name  string
		edges Edges
		want  int
	}{
		{"uniform", Uniform(Water), 1},
		{"halves", Edges{Plain, Plain, Plain, Water, Water, Water}, 2},
		{"thirds", Edges{Plain, Plain, Forest, Forest, Water, Water}, 3},
		{"sixths", Edges{Plain, Forest, Plain, Forest, Plain, Forest}, 6},
		{"wrapped arc", Edges{Water, Plain, Plain, Plain, Plain, Water}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Segments(tc.edges); got != tc.want {
				t.Errorf("Segments(%v) = %d, want %d", tc.edges, got, tc.want)
			}
		})
	}
}

func TestParseTerrain(t *testing.T) {
	for _, tr := range AllTerrains {
		got, ok := ParseTerrain(tr.String())
		if !ok || got != tr {
			t.Errorf("ParseTerrain(%q) = %v, %v", tr.String(), got, ok)
		}
	}
	if _, ok := ParseTerrain("lava"); ok {
		t.Error("ParseTerrain should reject unknown names")
	}
}
