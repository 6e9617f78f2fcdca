package sokoban

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevelsIgnoresJunk(t *testing.T) {
	text := "blablabla\n" +
		"blabla\n" +
		"XX\n" +
		"*************************************\n" +
		"XX\n" +
		"******"

	levels, err := ParseLevels(text)
	if err != nil {
		t.Fatalf("ParseLevels failed: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(levels))
	}
	for i, g := range levels {
		if g.ID() != i {
			t.Errorf("level %d has id %d", i, g.ID())
		}
	}
	if levels[1].TileAt(Position{X: 1, Y: 0}) != TileWall {
		t.Error("second level should have a wall at (1,0)")
	}
}

func TestParseLevelsExample(t *testing.T) {
	levels, err := ParseLevels(" X@*.\n" + "X\n" + "*****")
	if err != nil {
		t.Fatalf("ParseLevels failed: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("got %d levels, want 1", len(levels))
	}

	g := levels[0]
	if g.Height() != 1 {
		t.Errorf("height = %d, want 1 (single-character rows are not content)", g.Height())
	}
	if g.TileAt(Position{X: 1, Y: 0}) != TileWall {
		t.Error("expected wall at (1,0)")
	}
	if g.Player() != (Position{X: 2, Y: 0}) {
		t.Errorf("player = %v, want (2,0)", g.Player())
	}
	if idx, ok := g.BlockAt(Position{X: 3, Y: 0}); !ok || idx != 0 {
		t.Error("expected block at (3,0)")
	}
	if g.TileAt(Position{X: 3, Y: 0}) != TileSpace {
		t.Error("block should rest on space")
	}
	if g.TileAt(Position{X: 4, Y: 0}) != TileTarget {
		t.Error("expected target at (4,0)")
	}
}

func TestParseLevelsGrammar(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		levels int
		rows   []int // rows per level
	}{
		{
			name:   "empty level from bare divider",
			text:   "*\n",
			levels: 1,
			rows:   []int{0},
		},
		{
			name:   "trailing rows without divider are dropped",
			text:   "XXX\n***\nXXX\nX@X\n",
			levels: 1,
			rows:   []int{1},
		},
		{
			name:   "row must start with space or wall",
			text:   ".XX\n@XX\nXX\n***\n",
			levels: 1,
			rows:   []int{1},
		},
		{
			name:   "blank lines are ignored",
			text:   "XX\n\nXX\n*\n",
			levels: 1,
			rows:   []int{2},
		},
		{
			name:   "crlf line endings",
			text:   "XXX\r\nX@X\r\n***\r\n",
			levels: 1,
			rows:   []int{2},
		},
		{
			name:   "consecutive dividers",
			text:   "XX\n**\n**\nXX\n*\n",
			levels: 3,
			rows:   []int{1, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := ParseLevels(tt.text)
			if err != nil {
				t.Fatalf("ParseLevels failed: %v", err)
			}
			if len(levels) != tt.levels {
				t.Fatalf("got %d levels, want %d", len(levels), tt.levels)
			}
			for i, g := range levels {
				if g.Height() != tt.rows[i] {
					t.Errorf("level %d has %d rows, want %d", i, g.Height(), tt.rows[i])
				}
			}
		})
	}
}

func TestParseLevelGlyphs(t *testing.T) {
	g, err := ParseLevel(3, []string{" X.*@&"})
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}

	if g.ID() != 3 {
		t.Errorf("id = %d, want 3", g.ID())
	}
	want := []Tile{TileSpace, TileWall, TileTarget, TileSpace, TileSpace, TileSpace}
	for x, tile := range want {
		if got := g.TileAt(Position{X: x}); got != tile {
			t.Errorf("tile at x=%d is %s, want %s", x, got, tile)
		}
	}
	if g.Player() != (Position{X: 4, Y: 0}) {
		t.Errorf("player = %v, want (4,0)", g.Player())
	}
	if g.BlockCount() != 1 {
		t.Errorf("block count = %d, want 1", g.BlockCount())
	}
}

func TestParseLevelLastPlayerWins(t *testing.T) {
	g, err := ParseLevel(0, []string{"X@ @X", "X@  X"})
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if g.Player() != (Position{X: 1, Y: 1}) {
		t.Errorf("player = %v, want (1,1)", g.Player())
	}
}

func TestParseLevelsErrors(t *testing.T) {
	tooWide := "X" + strings.Repeat(" ", MaxDim) + "\n*\n"
	tooTall := strings.Repeat("XX\n", MaxDim+1) + "*\n"

	tests := []struct {
		name string
		text string
		want error
	}{
		{"no levels", "just some text\n", ErrNoLevels},
		{"empty input", "", ErrNoLevels},
		{"too wide", tooWide, ErrLevelTooLarge},
		{"too tall", tooTall, ErrLevelTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevels(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadLevels(t *testing.T) {
	levels, err := LoadLevels(StringSource("XX\n*\nXX\n*\n"))
	if err != nil {
		t.Fatalf("LoadLevels failed: %v", err)
	}
	if len(levels) != 2 {
		t.Errorf("got %d levels, want 2", len(levels))
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := LoadLevels(NewFileSource(t.TempDir() + "/missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing level file")
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestFileSourceResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"absolute", filepath.Join(home, "a.txt"), filepath.Join(home, "a.txt")},
		{"home", "~/levels/b.txt", filepath.Join(home, "levels", "b.txt")},
		{"cleaned", filepath.Join(home, "x", "..", "c.txt"), filepath.Join(home, "c.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFileSource(tt.path).Resolve()
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuiltinPacksParse(t *testing.T) {
	for _, id := range []string{"classic", "tutorial"} {
		t.Run(id, func(t *testing.T) {
			levels, err := LoadLevels(embeddedPack(id))
			if err != nil {
				t.Fatalf("LoadLevels(%s) failed: %v", id, err)
			}
			for _, g := range levels {
				if g.BlockCount() == 0 {
					t.Errorf("level %d has no blocks", g.ID())
				}
				if g.Solved() {
					t.Errorf("level %d starts solved", g.ID())
				}
				if g.TileAt(g.Player()) == TileWall {
					t.Errorf("level %d: player inside a wall", g.ID())
				}
			}
		})
	}
}
