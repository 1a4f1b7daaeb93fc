package hex

// Direction indexes the six sides of a pointy-top hex, clockwise from NE.
type Direction int

const (
	NE Direction = iota
	E
	SE
	SW
	W
	NW
)

// Directions lists all directions in canonical order.
var Directions = [6]Direction{NE, E, SE, SW, W, NW}

// offsets are the axial deltas for each direction.
var offsets = [6]Coord{
	NE: {Q: +1, R: -1},
	E:  {Q: +1, R: 0},
	SE: {Q: 0, R: +1},
	SW: {Q: -1, R: +1},
	W:  {Q: -1, R: 0},
	NW: {Q: 0, R: -1},
}

// Offset returns the axial delta for this direction.
func (d Direction) Offset() Coord {
	return offsets[d.normalize()]
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	return (d.normalize() + 3) % 6
}

// Rotate turns the direction clockwise by steps (negative is counter-clockwise).
func (d Direction) Rotate(steps int) Direction {
	return Direction(Mod6(int(d) + steps))
}

func (d Direction) normalize() Direction {
	return Direction(Mod6(int(d)))
}

// String returns the compass name.
func (d Direction) String() string {
	switch d.normalize() {
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case W:
		return "W"
	default:
		return "NW"
	}
}

// Mod6 returns n mod 6 in [0, 6) for any integer n.
func Mod6(n int) int {
	m := n % 6
	if m < 0 {
		m += 6
	}
	return m
}
