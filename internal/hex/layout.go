package hex

import "math"

var sqrt3 = math.Sqrt(3)

// Layout projects axial coordinates onto a 2D plane (pixels or terminal cells).
// SizeX and SizeY are the hex radius along each axis; they differ when the
// target surface has non-square cells.
type Layout struct {
	SizeX   float64
	SizeY   float64
	OriginX float64
	OriginY float64
}

// NewLayout returns a layout with a uniform hex radius.
func NewLayout(size float64) Layout {
	return Layout{SizeX: size, SizeY: size}
}

// TerminalLayout spaces hex centers 6 columns apart horizontally and
// 3 rows apart vertically, which keeps every center on an integer cell
// and leaves room for a 5x3 glyph per tile.
func TerminalLayout() Layout {
	return Layout{SizeX: 6 / sqrt3, SizeY: 2}
}

// WithOrigin returns a copy of the layout centered on (x, y).
func (l Layout) WithOrigin(x, y float64) Layout {
	l.OriginX = x
	l.OriginY = y
	return l
}

// PixelCenter returns the center of c in layout space.
//
//	x = sizeX * sqrt(3) * (q + r/2)
//	y = sizeY * 3/2 * r
func (l Layout) PixelCenter(c Coord) (x, y float64) {
	x = l.SizeX*sqrt3*(float64(c.Q)+float64(c.R)/2) + l.OriginX
	y = l.SizeY*1.5*float64(c.R) + l.OriginY
	return x, y
}

// FromPixel returns the coordinate whose hex contains the point (x, y).
// It is the inverse of PixelCenter.
func (l Layout) FromPixel(x, y float64) Coord {
	px := (x - l.OriginX) / l.SizeX
	py := (y - l.OriginY) / l.SizeY
	fq := sqrt3/3*px - py/3
	fr := 2.0 / 3 * py
	return round(fq, fr)
}

// PixelCenter projects c with a uniform hex radius of size.
func PixelCenter(c Coord, size float64) (x, y float64) {
	return NewLayout(size).PixelCenter(c)
}
