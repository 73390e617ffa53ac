package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/snake"
)

func TestSnakeColorBands(t *testing.T) {
	tests := []struct {
		score    int
		expected core.Color
	}{
		{0, core.ColorGreen},
		{4, core.ColorGreen},
		{5, core.ColorCyan},
		{9, core.ColorCyan},
		{10, core.ColorYellow},
		{15, core.ColorMagenta},
		{20, core.ColorBlue},
		{25, core.ColorRed},
		{29, core.ColorRed},
		{30, core.ColorOrange},
		{500, core.ColorOrange},
		{-1, core.ColorGreen},
	}
	for _, tc := range tests {
		if got := SnakeColor(tc.score); got != tc.expected {
			t.Errorf("SnakeColor(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestPaintFrameColors(t *testing.T) {
	g, err := snake.New(snake.Options{Width: 6, Height: 5, Seed: 1, Food: snake.FoodFree})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.SetFood(core.Pt(1, 1))

	f := snake.NewFrameFor(g)
	f.Compose(g)

	s := core.NewScreen(10, 6)
	PaintFrame(s, f, 2, 1, 12)

	tests := []struct {
		name  string
		x, y  int
		r     rune
		color core.Color
	}{
		{"wall corner", 2, 1, '#', WallColor},
		{"food", 3, 2, '@', FoodColor},
		{"head", 2 + 3, 1 + 2, '*', core.ColorYellow},
		{"empty interior", 4, 2, ' ', core.ColorDefault},
		{"outside frame", 0, 0, ' ', core.ColorDefault},
	}
	for _, tc := range tests {
		cell := s.GetCell(tc.x, tc.y)
		if cell.Rune != tc.r || cell.Color != tc.color {
			t.Errorf("%s: cell (%d, %d) = %q/%v, expected %q/%v",
				tc.name, tc.x, tc.y, cell.Rune, cell.Color, tc.r, tc.color)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "##", WallColor)
	s.DrawText(2, 0, "**", core.ColorGreen)
	s.DrawText(0, 1, "Score: 1", core.ColorBrightWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "##") || !strings.Contains(out, "**") || !strings.Contains(out, "Score: 1") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
