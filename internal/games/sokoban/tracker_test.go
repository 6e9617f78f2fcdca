package sokoban

import "testing"

func TestTargetDelta(t *testing.T) {
	g := mustLevel(t, ". . ")

	tests := []struct {
		name     string
		from, to Position
		want     int
	}{
		{"space to target", Position{X: 1, Y: 0}, Position{X: 2, Y: 0}, 1},
		{"target to space", Position{X: 0, Y: 0}, Position{X: 1, Y: 0}, -1},
		{"space to space", Position{X: 1, Y: 0}, Position{X: 3, Y: 0}, 0},
		{"target to target", Position{X: 0, Y: 0}, Position{X: 2, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetDelta(g, tt.from, tt.to); got != tt.want {
				t.Errorf("targetDelta(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestWinOnPushOntoTarget(t *testing.T) {
	// Target at (0,0), block at (1,0), player at (2,0).
	g := mustLevel(t, ".*@")
	if g.Solved() {
		t.Fatal("level should not start solved")
	}

	r := Move(g, DirLeft)
	if !r.Pushed() || r.TargetDelta != 1 {
		t.Fatalf("expected push onto target, got %+v", r)
	}
	if g.BlocksOnTarget() != 1 || !g.Solved() {
		t.Errorf("blocks on target = %d, solved = %v; want 1, true", g.BlocksOnTarget(), g.Solved())
	}
}

func TestWinClearsWhenPushedOff(t *testing.T) {
	g := mustLevel(t, "@*. ")

	Move(g, DirRight)
	if !g.Solved() {
		t.Fatal("block on target should solve the level")
	}

	r := Move(g, DirRight)
	if r.TargetDelta != -1 {
		t.Errorf("target delta = %d, want -1", r.TargetDelta)
	}
	if g.BlocksOnTarget() != 0 || g.Solved() {
		t.Errorf("blocks on target = %d, solved = %v; want 0, false", g.BlocksOnTarget(), g.Solved())
	}
}

func TestWalkNeverChangesCount(t *testing.T) {
	g := mustLevel(t, "X@.*.X")
	g.addBlock(Position{X: 4, Y: 0})
	before := g.BlocksOnTarget()

	r := Move(g, DirRight)
	if r.Kind != MoveWalked {
		t.Fatalf("kind = %s, want Walked", r.Kind)
	}
	if g.BlocksOnTarget() != before {
		t.Errorf("walking onto a target changed the count from %d to %d", before, g.BlocksOnTarget())
	}
}
