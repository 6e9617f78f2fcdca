package sokoban

import (
	"math/rand"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		dir        Direction
		kind       MoveKind
		player     Position
		block      Position // expected position of block 0 afterwards
		hasBlock   bool
		wantTarget int
	}{
		{
			name:   "walk into space",
			rows:   []string{"X@ X"},
			dir:    DirRight,
			kind:   MoveWalked,
			player: Position{X: 2, Y: 0},
		},
		{
			name:   "walk onto target",
			rows:   []string{"X@.X"},
			dir:    DirRight,
			kind:   MoveWalked,
			player: Position{X: 2, Y: 0},
		},
		{
			name:   "walk into wall",
			rows:   []string{"X@X"},
			dir:    DirRight,
			kind:   MoveRejected,
			player: Position{X: 1, Y: 0},
		},
		{
			name:   "walk off grid edge",
			rows:   []string{"@ "},
			dir:    DirLeft,
			kind:   MoveRejected,
			player: Position{X: 0, Y: 0},
		},
		{
			name:   "walk off top edge",
			rows:   []string{"@ "},
			dir:    DirUp,
			kind:   MoveRejected,
			player: Position{X: 0, Y: 0},
		},
		{
			name:     "push into space",
			rows:     []string{"X@* X"},
			dir:      DirRight,
			kind:     MovePushed,
			player:   Position{X: 2, Y: 0},
			block:    Position{X: 3, Y: 0},
			hasBlock: true,
		},
		{
			name:       "push onto target",
			rows:       []string{"X@*.X"},
			dir:        DirRight,
			kind:       MovePushed,
			player:     Position{X: 2, Y: 0},
			block:      Position{X: 3, Y: 0},
			hasBlock:   true,
			wantTarget: 1,
		},
		{
			name:     "push into wall",
			rows:     []string{"X@*X"},
			dir:      DirRight,
			kind:     MoveRejected,
			player:   Position{X: 1, Y: 0},
			block:    Position{X: 2, Y: 0},
			hasBlock: true,
		},
		{
			name:     "push into block",
			rows:     []string{"X@** X"},
			dir:      DirRight,
			kind:     MoveRejected,
			player:   Position{X: 1, Y: 0},
			block:    Position{X: 2, Y: 0},
			hasBlock: true,
		},
		{
			name:     "push off grid edge",
			rows:     []string{"*@"},
			dir:      DirLeft,
			kind:     MoveRejected,
			player:   Position{X: 1, Y: 0},
			block:    Position{X: 0, Y: 0},
			hasBlock: true,
		},
		{
			name: "push down",
			rows: []string{
				"X@X",
				"X*X",
				"X.X",
			},
			dir:        DirDown,
			kind:       MovePushed,
			player:     Position{X: 1, Y: 1},
			block:      Position{X: 1, Y: 2},
			hasBlock:   true,
			wantTarget: 1,
		},
		{
			name:   "no direction",
			rows:   []string{"X@ X"},
			dir:    DirNone,
			kind:   MoveRejected,
			player: Position{X: 1, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustLevel(t, tt.rows...)
			before := g.Clone()

			r := Resolve(g, tt.dir)
			if !g.Equal(before) {
				t.Fatal("Resolve must not mutate the grid")
			}
			if r.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", r.Kind, tt.kind)
			}

			g.Apply(r)
			if g.Player() != tt.player {
				t.Errorf("player = %v, want %v", g.Player(), tt.player)
			}
			if tt.hasBlock && g.Blocks()[0].Pos != tt.block {
				t.Errorf("block = %v, want %v", g.Blocks()[0].Pos, tt.block)
			}
			if g.BlocksOnTarget() != tt.wantTarget {
				t.Errorf("blocks on target = %d, want %d", g.BlocksOnTarget(), tt.wantTarget)
			}
			if r.Kind == MoveRejected && !g.Equal(before) {
				t.Error("rejected move changed the grid")
			}
		})
	}
}

func TestPlainMovesAreReversible(t *testing.T) {
	g := mustLevel(t,
		"XXXXX",
		"X   X",
		"X @ X",
		"X  .X",
		"XXXXX",
	)

	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			start := g.Clone()
			if r := Move(start, d); r.Kind != MoveWalked {
				t.Fatalf("move %s = %s, want Walked", d, r.Kind)
			}
			if r := Move(start, d.Opposite()); r.Kind != MoveWalked {
				t.Fatalf("move back %s = %s, want Walked", d.Opposite(), r.Kind)
			}
			if !start.Equal(g) {
				t.Errorf("move %s then %s did not restore the grid", d, d.Opposite())
			}
		})
	}
}

func TestTargetCountInvariant(t *testing.T) {
	g := mustLevel(t,
		"XXXXXXXX",
		"X  .   X",
		"X *  * X",
		"X. @*  X",
		"X   . .X",
		"X  *   X",
		"XXXXXXXX",
	)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		d := Directions[rng.Intn(len(Directions))]
		Move(g, d)

		if got, want := g.BlocksOnTarget(), countOnTarget(g); got != want {
			t.Fatalf("step %d (%s): blocks on target = %d, recount = %d", i, d, got, want)
		}
		if _, onBlock := g.BlockAt(g.Player()); onBlock {
			t.Fatalf("step %d: player overlaps a block at %v", i, g.Player())
		}
		if g.TileAt(g.Player()) == TileWall {
			t.Fatalf("step %d: player inside a wall at %v", i, g.Player())
		}
	}
}

func countOnTarget(g *Grid) int {
	n := 0
	for _, b := range g.Blocks() {
		if g.TileAt(b.Pos) == TileTarget {
			n++
		}
	}
	return n
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("%s opposite twice = %s", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%s and its opposite do not cancel", d)
		}
	}
}
