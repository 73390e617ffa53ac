package snake

import "github.com/vovakirdan/term-snake/internal/core"

// Body is the ordered list of cells occupied by the snake, head first.
type Body struct {
	cells []core.Point // Head at index 0
}

// NewBody creates a one-cell body at p.
func NewBody(p core.Point) *Body {
	return &Body{cells: []core.Point{p}}
}

// Len returns the number of cells.
func (b *Body) Len() int {
	return len(b.cells)
}

// Head returns the front cell.
func (b *Body) Head() core.Point {
	return b.cells[0]
}

// Tail returns the back cell.
func (b *Body) Tail() core.Point {
	return b.cells[len(b.cells)-1]
}

// Contains checks if the snake occupies p.
func (b *Body) Contains(p core.Point) bool {
	return b.indexOf(p) >= 0
}

// ContainsExceptTail checks if p is occupied by any cell but the tail.
func (b *Body) ContainsExceptTail(p core.Point) bool {
	i := b.indexOf(p)
	return i >= 0 && i < len(b.cells)-1
}

func (b *Body) indexOf(p core.Point) int {
	for i, seg := range b.cells {
		if seg == p {
			return i
		}
	}
	return -1
}

// PushHead adds p as the new head.
func (b *Body) PushHead(p core.Point) {
	b.cells = append(b.cells, core.Point{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = p
}

// PopTail removes and returns the back cell. A one-cell body is left intact.
func (b *Body) PopTail() core.Point {
	tail := b.Tail()
	if len(b.cells) > 1 {
		b.cells = b.cells[:len(b.cells)-1]
	}
	return tail
}

// Cells returns a copy of the occupied cells, head first.
func (b *Body) Cells() []core.Point {
	out := make([]core.Point, len(b.cells))
	copy(out, b.cells)
	return out
}
