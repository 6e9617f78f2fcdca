package sokoban

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// HelpText is the key legend shown under the board.
const HelpText = "q - quit, r - reset, n - next level, p - previous level"

// Glyph is how one kind of cell is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Theme maps cell contents to glyphs.
type Theme struct {
	Wall           Glyph
	Floor          Glyph
	Target         Glyph
	Block          Glyph
	BlockOnTarget  Glyph
	Player         Glyph
	PlayerOnTarget Glyph
}

// DefaultTheme uses the level file glyphs.
func DefaultTheme() Theme {
	return Theme{
		Wall:           Glyph{Rune: 'X', Color: core.ColorGray},
		Floor:          Glyph{Rune: ' ', Color: core.ColorDefault},
		Target:         Glyph{Rune: '.', Color: core.ColorYellow},
		Block:          Glyph{Rune: '*', Color: core.ColorOrange},
		BlockOnTarget:  Glyph{Rune: '*', Color: core.ColorBrightGreen},
		Player:         Glyph{Rune: '@', Color: core.ColorBrightCyan},
		PlayerOnTarget: Glyph{Rune: '@', Color: core.ColorBrightYellow},
	}
}

// GlyphAt picks the glyph for cell p. The player is drawn over blocks and
// terrain, blocks over terrain.
func (th Theme) GlyphAt(snap Snapshot, p Position) Glyph {
	onTarget := snap.TileAt(p) == TileTarget
	switch {
	case snap.Player == p:
		if onTarget {
			return th.PlayerOnTarget
		}
		return th.Player
	case snap.HasBlock(p):
		if onTarget {
			return th.BlockOnTarget
		}
		return th.Block
	}

	switch snap.TileAt(p) {
	case TileWall:
		return th.Wall
	case TileTarget:
		return th.Target
	default:
		return th.Floor
	}
}

// Draw renders the board at the top-left of dst followed by a status line and,
// optionally, the help line. Cells that do not fit are clipped.
func Draw(dst *core.Screen, snap Snapshot, theme Theme, showHelp bool) {
	dst.Clear()

	board := core.NewRect(0, 0, snap.Width, snap.Height)
	for y := board.Y; y < board.Bottom(); y++ {
		for x := board.X; x < board.Right(); x++ {
			g := theme.GlyphAt(snap, Position{X: x, Y: y})
			dst.SetColored(x, y, g.Rune, g.Color)
		}
	}

	// The player may stand outside the populated rows when a level has no '@'.
	if !board.Contains(snap.Player.X, snap.Player.Y) {
		g := theme.GlyphAt(snap, snap.Player)
		dst.SetColored(snap.Player.X, snap.Player.Y, g.Rune, g.Color)
	}

	row := core.Max(snap.Height, snap.Player.Y+1) + 1
	dst.DrawText(0, row, StatusLine(snap))
	row++

	switch {
	case snap.Complete:
		dst.DrawTextColored(0, row, "All levels solved!", core.ColorBrightGreen)
		row++
	case len(snap.Blocks) == 0:
		dst.DrawTextColored(0, row, "This level has no blocks", core.ColorGray)
		row++
	}

	if showHelp {
		dst.DrawTextColored(0, row, HelpText, core.ColorGray)
	}
}

// StatusLine summarises progress on the current level.
func StatusLine(snap Snapshot) string {
	return fmt.Sprintf("Level %d/%d  Moves: %d  Pushes: %d  On target: %d/%d",
		snap.Level+1, snap.LevelCount, snap.Moves, snap.Pushes,
		snap.BlocksOnTarget, len(snap.Blocks))
}
