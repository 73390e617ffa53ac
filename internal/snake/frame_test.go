package snake

import (
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
)

func TestFrameCompose(t *testing.T) {
	g := newTestGame(t, Options{Width: 6, Height: 5, Seed: 1, Food: FoodFree})
	place(g, DirRight, core.Pt(3, 2), core.Pt(2, 2))
	g.SetFood(core.Pt(4, 3))

	f := NewFrameFor(g)
	f.Compose(g)

	expected := "" +
		"######\n" +
		"#    #\n" +
		"# ** #\n" +
		"#   @#\n" +
		"######"
	if got := f.String(); got != expected {
		t.Errorf("Compose produced:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestFrameBodyBeatsFood(t *testing.T) {
	g := newTestGame(t, Options{Width: 6, Height: 5, Seed: 2, Food: FoodAnywhere})
	place(g, DirRight, core.Pt(3, 2), core.Pt(2, 2))
	g.food = core.Pt(2, 2)

	f := NewFrameFor(g)
	f.Compose(g)

	if k := f.At(2, 2); k != CellBody {
		t.Errorf("At(2, 2) = %v, body should win over food", k)
	}
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.At(x, y) == CellFood {
				t.Errorf("food marker should be hidden, found at (%d, %d)", x, y)
			}
		}
	}
}

func TestFrameRebuiltEachTick(t *testing.T) {
	g := newTestGame(t, classic(3))
	g.SetFood(core.Pt(1, 1))
	f := NewFrameFor(g)

	f.Compose(g)
	if f.At(15, 10) != CellBody {
		t.Fatalf("expected body at (15, 10)")
	}

	g.Step(core.NewInputFrame())
	f.Compose(g)

	if f.At(15, 10) != CellEmpty {
		t.Errorf("vacated cell should be empty after recompose, got %v", f.At(15, 10))
	}
	if f.At(16, 10) != CellBody {
		t.Errorf("new head cell should be body, got %v", f.At(16, 10))
	}
}

func TestFrameWallsAndCounts(t *testing.T) {
	g := newTestGame(t, classic(4))
	f := NewFrameFor(g)
	f.Compose(g)

	if f.Width() != 30 || f.Height() != 20 {
		t.Fatalf("frame is %dx%d, expected 30x20", f.Width(), f.Height())
	}

	counts := make(map[CellKind]int)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			k := f.At(x, y)
			counts[k]++
			if g.Grid().IsWall(core.Pt(x, y)) && k != CellWall {
				t.Errorf("border cell (%d, %d) is %v", x, y, k)
			}
		}
	}

	if counts[CellWall] != 2*30+2*18 {
		t.Errorf("wall cells = %d, expected %d", counts[CellWall], 2*30+2*18)
	}
	if counts[CellBody] != 1 || counts[CellFood] != 1 {
		t.Errorf("body = %d food = %d, expected 1 each", counts[CellBody], counts[CellFood])
	}
	if f.At(-1, 0) != CellEmpty || f.At(30, 0) != CellEmpty {
		t.Error("out-of-bounds reads should be empty")
	}
}

func TestCellKindRunes(t *testing.T) {
	tests := []struct {
		kind CellKind
		r    rune
	}{
		{CellEmpty, ' '},
		{CellWall, '#'},
		{CellBody, '*'},
		{CellFood, '@'},
	}
	for _, tc := range tests {
		if tc.kind.Rune() != tc.r {
			t.Errorf("%v.Rune() = %q, expected %q", tc.kind, tc.kind.Rune(), tc.r)
		}
	}
}
