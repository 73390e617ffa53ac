package snake

import (
	"strings"

	"github.com/vovakirdan/term-snake/internal/core"
)

// CellKind is the marker stored in each frame cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellWall
	CellBody
	CellFood
)

// Rune returns the classic glyph for the cell kind.
func (k CellKind) Rune() rune {
	switch k {
	case CellWall:
		return '#'
	case CellBody:
		return '*'
	case CellFood:
		return '@'
	default:
		return ' '
	}
}

func (k CellKind) String() string {
	switch k {
	case CellWall:
		return "wall"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return "empty"
	}
}

// Frame is an H x W buffer of cell kinds. It is sized once and rebuilt from
// scratch by Compose on every tick.
type Frame struct {
	width  int
	height int
	cells  []CellKind
}

// NewFrame allocates a frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}
}

// NewFrameFor allocates a frame that fits the game's grid.
func NewFrameFor(g *Game) *Frame {
	grid := g.Grid()
	return NewFrame(grid.W, grid.H)
}

// Width returns the frame width.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height.
func (f *Frame) Height() int { return f.height }

// At returns the cell kind at (x, y). Out-of-bounds cells read as empty.
func (f *Frame) At(x, y int) CellKind {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return CellEmpty
	}
	return f.cells[y*f.width+x]
}

func (f *Frame) set(p core.Point, k CellKind) {
	if p.X < 0 || p.X >= f.width || p.Y < 0 || p.Y >= f.height {
		return
	}
	f.cells[p.Y*f.width+p.X] = k
}

// Compose rebuilds the frame from the game state. Walls go down first, then
// the body, then food; food never overwrites a body cell.
func (f *Frame) Compose(g *Game) {
	for i := range f.cells {
		f.cells[i] = CellEmpty
	}

	grid := g.Grid()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := core.Pt(x, y)
			if grid.IsWall(p) {
				f.set(p, CellWall)
			}
		}
	}

	for _, seg := range g.body.cells {
		f.set(seg, CellBody)
	}

	food := g.Food()
	if f.At(food.X, food.Y) != CellBody {
		f.set(food, CellFood)
	}
}

// String renders the frame with the classic glyphs, rows joined by newlines.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)

	for y := 0; y < f.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < f.width; x++ {
			sb.WriteRune(f.At(x, y).Rune())
		}
	}
	return sb.String()
}
