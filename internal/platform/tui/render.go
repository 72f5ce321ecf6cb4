package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-othellonia/internal/core"
)

// palette maps core colors to terminal colors. ColorDefault is absent and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("28"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorDarkGreen:    lipgloss.Color("22"),
	core.ColorBlack:        lipgloss.Color("16"),
}

type styleKey struct {
	fg, bg core.Color
}

var (
	stylesMu sync.Mutex
	styles   = make(map[styleKey]lipgloss.Style)
)

// styleFor returns the cached style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg, bg}
	stylesMu.Lock()
	defer stylesMu.Unlock()
	if st, ok := styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := palette[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		st = st.Background(c)
	}
	styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != first.FG || cell.BG != first.BG {
					break
				}
				if !s.IsContinuation(x, y) {
					run.WriteRune(cell.Rune)
				}
				x++
			}
			if first.FG == core.ColorDefault && first.BG == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first.FG, first.BG).Render(run.String()))
		}
	}
	return sb.String()
}
