package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	core.ColorBrown:       lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Fixed colors of the playfield.
const (
	WallColor = core.ColorBrown
	FoodColor = core.ColorRed
)

// snakeBands changes the body color every five points.
var snakeBands = []core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorBlue,
	core.ColorRed,
}

// SnakeColor returns the body color for a score. Past the last band it stays orange.
func SnakeColor(score int) core.Color {
	if score < 0 {
		score = 0
	}
	band := score / 5
	if band >= len(snakeBands) {
		return core.ColorOrange
	}
	return snakeBands[band]
}

// PaintFrame copies a composed frame into the screen at (ox, oy).
func PaintFrame(s *core.Screen, f *snake.Frame, ox, oy, score int) {
	body := SnakeColor(score)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			kind := f.At(x, y)
			var c core.Color
			switch kind {
			case snake.CellWall:
				c = WallColor
			case snake.CellBody:
				c = body
			case snake.CellFood:
				c = FoodColor
			default:
				c = core.ColorDefault
			}
			s.SetColored(ox+x, oy+y, kind.Rune(), c)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
