package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/giladgray/cartographist/internal/core"
)

// palette maps core colors to ANSI color numbers.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Painter turns a Screen into styled terminal output.
// Each SSH session gets its own renderer so color support is detected per client.
type Painter struct {
	styles []lipgloss.Style
}

// NewPainter builds styles on r. A nil renderer uses the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{styles: make([]lipgloss.Style, len(palette))}
	for i, code := range palette {
		s := r.NewStyle()
		if code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		p.styles[i] = s
	}
	return p
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// Paint renders s row by row, one style call per run of equally colored cells.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPainter = NewPainter(nil)

// RenderScreen paints s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Paint(s)
}
