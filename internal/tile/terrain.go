// Package tile generates hex tiles whose six edges carry terrain.
package tile

import "github.com/giladgray/cartographist/internal/core"

// Terrain is the closed set of terrain types an edge can carry.
type Terrain uint8

const (
	Plain Terrain = iota
	Desert
	Forest
	Mountain
	Water
)

// AllTerrains lists every terrain type.
var AllTerrains = []Terrain{Plain, Desert, Forest, Mountain, Water}

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case Plain:
		return "plain"
	case Desert:
		return "desert"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Glyph returns the rune used to draw an edge of this terrain.
func (t Terrain) Glyph() rune {
	switch t {
	case Plain:
		return '"'
	case Desert:
		return ':'
	case Forest:
		return '^'
	case Mountain:
		return 'A'
	case Water:
		return '~'
	default:
		return '?'
	}
}

// Color returns the screen color for this terrain.
func (t Terrain) Color() core.Color {
	switch t {
	case Plain:
		return core.ColorBrightMagenta
	case Desert:
		return core.ColorYellow
	case Forest:
		return core.ColorGreen
	case Mountain:
		return core.ColorGray
	case Water:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// ParseTerrain returns the terrain with the given name.
func ParseTerrain(name string) (Terrain, bool) {
	for _, t := range AllTerrains {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
