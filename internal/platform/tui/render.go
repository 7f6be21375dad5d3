package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/L0weN/ArmorCrush/internal/core"
)

// ansiCodes maps core colors to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
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

// Renderer turns screens into styled strings for one output.
// SSH sessions each get their own lipgloss renderer so color support is
// detected per client.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
	title  lipgloss.Style
	dim    lipgloss.Style
}

// NewRenderer builds styles from r. A nil r uses the default renderer.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return &Renderer{
		styles: styles,
		plain:  r.NewStyle(),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	return r.plain
}

// Screen renders s, grouping runs of equal color into one styled span.
func (r *Renderer) Screen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(r.style(color).Render(run.String()))
			}
		}
	}
	return sb.String()
}
