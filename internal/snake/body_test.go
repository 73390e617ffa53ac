package snake

import (
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
)

func TestBodyPushPop(t *testing.T) {
	b := NewBody(core.Pt(5, 5))
	if b.Len() != 1 || b.Head() != b.Tail() {
		t.Fatalf("new body should have one cell, got %v", b.Cells())
	}

	b.PushHead(core.Pt(6, 5))
	b.PushHead(core.Pt(7, 5))

	want := []core.Point{core.Pt(7, 5), core.Pt(6, 5), core.Pt(5, 5)}
	got := b.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if tail := b.PopTail(); tail != core.Pt(5, 5) {
		t.Errorf("PopTail() = %v, expected (5, 5)", tail)
	}
	if b.Len() != 2 || b.Tail() != core.Pt(6, 5) {
		t.Errorf("after PopTail, body = %v", b.Cells())
	}
}

func TestBodyPopTailKeepsLastCell(t *testing.T) {
	b := NewBody(core.Pt(1, 1))
	b.PopTail()
	if b.Len() != 1 {
		t.Errorf("PopTail on a one-cell body should keep it, len = %d", b.Len())
	}
}

func TestBodyContains(t *testing.T) {
	b := NewBody(core.Pt(3, 3))
	b.PushHead(core.Pt(4, 3))
	b.PushHead(core.Pt(5, 3))

	if !b.Contains(core.Pt(3, 3)) {
		t.Error("Contains should include the tail")
	}
	if b.ContainsExceptTail(core.Pt(3, 3)) {
		t.Error("ContainsExceptTail should skip the tail")
	}
	if !b.ContainsExceptTail(core.Pt(5, 3)) {
		t.Error("ContainsExceptTail should include the head")
	}
	if b.Contains(core.Pt(9, 9)) {
		t.Error("Contains should be false for a free cell")
	}
}

func TestBodyCellsIsACopy(t *testing.T) {
	b := NewBody(core.Pt(2, 2))
	cells := b.Cells()
	cells[0] = core.Pt(0, 0)
	if b.Head() != core.Pt(2, 2) {
		t.Error("mutating Cells() result should not affect the body")
	}
}
