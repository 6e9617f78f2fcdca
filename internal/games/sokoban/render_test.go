package sokoban

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func TestDrawBoard(t *testing.T) {
	s := mustSession(t, "XXXXXX\nX@* .X\nXXXXXX\n*\n")
	screen := core.NewScreen(60, 8)

	Draw(screen, s.Snapshot(), DefaultTheme(), true)

	rows := []string{"XXXXXX", "X@* .X", "XXXXXX"}
	for y, want := range rows {
		if got := screen.Row(y)[:len(want)]; got != want {
			t.Errorf("row %d = %q, want %q", y, got, want)
		}
	}

	if !strings.Contains(screen.Row(4), "Level 1/1") {
		t.Errorf("status line missing, got %q", screen.Row(4))
	}
	if !strings.Contains(screen.String(), HelpText) {
		t.Error("help line missing")
	}
}

func TestDrawWithoutHelp(t *testing.T) {
	s := mustSession(t, "X@*.X\n*\n")
	screen := core.NewScreen(60, 6)

	Draw(screen, s.Snapshot(), DefaultTheme(), false)
	if strings.Contains(screen.String(), "quit") {
		t.Error("help line drawn although disabled")
	}
}

func TestGlyphColors(t *testing.T) {
	theme := DefaultTheme()
	s := mustSession(t, "X@*.X\n*\n")
	s.Move(DirRight)
	snap := s.Snapshot()

	tests := []struct {
		name string
		pos  Position
		want Glyph
	}{
		{"wall", Position{X: 0, Y: 0}, theme.Wall},
		{"player", Position{X: 2, Y: 0}, theme.Player},
		{"block on target", Position{X: 3, Y: 0}, theme.BlockOnTarget},
		{"floor", Position{X: 1, Y: 0}, theme.Floor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := theme.GlyphAt(snap, tt.pos); got != tt.want {
				t.Errorf("GlyphAt(%v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}

	screen := core.NewScreen(40, 6)
	Draw(screen, snap, theme, false)
	if c := screen.GetCell(3, 0); c.Color != theme.BlockOnTarget.Color {
		t.Errorf("block on target color = %v, want %v", c.Color, theme.BlockOnTarget.Color)
	}
}

func TestDrawComplete(t *testing.T) {
	s := mustSession(t, "X@*.X\n*\n")
	s.Move(DirRight)

	screen := core.NewScreen(40, 6)
	Draw(screen, s.Snapshot(), DefaultTheme(), false)
	if !strings.Contains(screen.String(), "All levels solved") {
		t.Error("completion message missing")
	}
}

func TestPlayerOnTargetGlyph(t *testing.T) {
	theme := DefaultTheme()
	s := mustSession(t, "X@.X\n*\n")
	s.Move(DirRight)

	if got := theme.GlyphAt(s.Snapshot(), Position{X: 2, Y: 0}); got != theme.PlayerOnTarget {
		t.Errorf("glyph = %+v, want PlayerOnTarget", got)
	}
}
