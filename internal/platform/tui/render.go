package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorBlack:    lipgloss.NewStyle(),
	core.ColorRed:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorDimGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorYellow:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorCyan:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorTeal:     lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
	core.ColorGray:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDimRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("52")),
	core.ColorDarkGray: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// Status line styles
var (
	ledOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	ledOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

const ledGlyph = "●"

// LED is the status light shown next to the score. The session lights it
// while a game is being played.
type LED struct {
	lit bool
}

// SetLit implements core.Indicator.
func (l *LED) SetLit(on bool) {
	l.lit = on
}

// Lit reports whether the light is on.
func (l *LED) Lit() bool {
	return l.lit
}

// View renders the light as a coloured glyph.
func (l *LED) View() string {
	if l.lit {
		return ledOnStyle.Render(ledGlyph)
	}
	return ledOffStyle.Render(ledGlyph)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same color and weight
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start.Color]
			if !ok {
				style = colorStyles[core.ColorBlack]
			}
			if start.Bold {
				style = style.Bold(true)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
