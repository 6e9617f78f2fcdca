package config

import (
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// GlyphPreset represents a named glyph set.
type GlyphPreset string

const (
	PresetClassic GlyphPreset = "classic" // level file glyphs
	PresetUnicode GlyphPreset = "unicode" // box and bullet characters
	PresetMono    GlyphPreset = "mono"    // level file glyphs without color
)

// Presets lists the known glyph presets.
func Presets() []GlyphPreset {
	return []GlyphPreset{PresetClassic, PresetUnicode, PresetMono}
}

// PresetTheme returns the theme for a preset. The empty preset is classic.
func PresetTheme(preset GlyphPreset) (sokoban.Theme, bool) {
	switch preset {
	case "", PresetClassic:
		return sokoban.DefaultTheme(), true
	case PresetUnicode:
		return sokoban.Theme{
			Wall:           sokoban.Glyph{Rune: '█', Color: core.ColorGray},
			Floor:          sokoban.Glyph{Rune: ' ', Color: core.ColorDefault},
			Target:         sokoban.Glyph{Rune: '·', Color: core.ColorYellow},
			Block:          sokoban.Glyph{Rune: '□', Color: core.ColorOrange},
			BlockOnTarget:  sokoban.Glyph{Rune: '■', Color: core.ColorBrightGreen},
			Player:         sokoban.Glyph{Rune: '☺', Color: core.ColorBrightCyan},
			PlayerOnTarget: sokoban.Glyph{Rune: '☻', Color: core.ColorBrightYellow},
		}, true
	case PresetMono:
		theme := sokoban.DefaultTheme()
		for _, g := range []*sokoban.Glyph{
			&theme.Wall, &theme.Floor, &theme.Target, &theme.Block,
			&theme.BlockOnTarget, &theme.Player, &theme.PlayerOnTarget,
		} {
			g.Color = core.ColorDefault
		}
		// Without color a block on a target needs its own rune.
		theme.BlockOnTarget.Rune = '&'
		return theme, true
	default:
		return sokoban.Theme{}, false
	}
}

// ApplyPreset switches the config to a preset and drops glyph overrides.
func ApplyPreset(cfg *SokobanConfig, preset GlyphPreset) {
	cfg.Display.Preset = string(preset)
	cfg.Display.Glyphs = GlyphsConfig{}
}
