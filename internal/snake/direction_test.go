package snake

import (
	"testing"

	"github.com/vovakirdan/term-snake/internal/core"
)

func TestTurnRejectsOnlyReversal(t *testing.T) {
	for _, cur := range Directions {
		for _, req := range Directions {
			got := cur.Turn(req)
			if req == cur.Opposite() {
				if got != cur {
					t.Errorf("%v.Turn(%v) = %v, reversal should be rejected", cur, req, got)
				}
				continue
			}
			if got != req {
				t.Errorf("%v.Turn(%v) = %v, expected %v", cur, req, got, req)
			}
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite() == d {
			t.Errorf("%v.Opposite() should differ from %v", d, d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		sum := d.Delta().Add(d.Opposite().Delta())
		if sum != core.Pt(0, 0) {
			t.Errorf("deltas of %v and its opposite should cancel, got %v", d, sum)
		}
	}
}

func TestDelta(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Point
	}{
		{DirUp, core.Pt(0, -1)},
		{DirDown, core.Pt(0, 1)},
		{DirLeft, core.Pt(-1, 0)},
		{DirRight, core.Pt(1, 0)},
	}

	for _, tc := range tests {
		if got := tc.dir.Delta(); got != tc.expected {
			t.Errorf("%v.Delta() = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionQuit, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tc := range tests {
		dir, ok := DirectionFor(tc.action)
		if ok != tc.ok || (ok && dir != tc.dir) {
			t.Errorf("DirectionFor(%v) = (%v, %v), expected (%v, %v)", tc.action, dir, ok, tc.dir, tc.ok)
		}
	}
}
