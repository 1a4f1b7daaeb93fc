// Package hex provides axial coordinates for a pointy-top hexagonal map.
// It has no dependencies so the game rules built on it stay pure and testable.
package hex

import (
	"fmt"
	"math"
)

// Coord is an axial coordinate (q, r). The implicit cube coordinate is s = -q - r.
// Coord is comparable and can be used directly as a map key.
type Coord struct {
	Q int
	R int
}

// C is a convenience constructor for Coord.
func C(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// Origin is the coordinate of the first seed tile.
var Origin = Coord{}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// Neighbor returns the adjacent coordinate in direction d.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Offset())
}

// Neighbors returns the six adjacent coordinates in canonical direction order.
// Index i of the result faces the edge Terrain[i] of a tile placed at c.
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for _, d := range Directions {
		result[d] = c.Neighbor(d)
	}
	return result
}

// Key returns a stable string encoding "q,r".
func (c Coord) Key() string {
	return fmt.Sprintf("%d,%d", c.Q, c.R)
}

// String returns a human-readable representation.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Neighbor is the function form of Coord.Neighbor.
func Neighbor(c Coord, d Direction) Coord {
	return c.Neighbor(d)
}

// Neighbors is the function form of Coord.Neighbors.
func Neighbors(c Coord) [6]Coord {
	return c.Neighbors()
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// Disk returns all coordinates within distance radius of center,
// ordered by q then r.
func Disk(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	res := make([]Coord, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			res = append(res, center.Add(Coord{Q: q, R: r}))
		}
	}
	return res
}

// round converts fractional cube coordinates to the nearest hex.
func round(fq, fr float64) Coord {
	fs := -fq - fr
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	// Reset the component with the largest rounding error
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Coord{Q: int(q), R: int(r)}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
