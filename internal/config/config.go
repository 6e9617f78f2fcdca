// Package config provides YAML-based configuration loading for the
// sokoban player: level selection, display, storage and logging.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// SokobanConfig contains all configuration for the player.
type SokobanConfig struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// LevelsConfig selects which levels are played.
type LevelsConfig struct {
	Pack  string `yaml:"pack"`  // registered pack id, used when Path is empty
	Path  string `yaml:"path"`  // level file on disk
	Start int    `yaml:"start"` // 1-based first level
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Backend  string       `yaml:"backend"` // "tea" or "tcell"
	Preset   string       `yaml:"preset"`  // glyph preset, see GlyphPreset
	ShowHelp bool         `yaml:"show_help"`
	Glyphs   GlyphsConfig `yaml:"glyphs"`
}

// GlyphConfig overrides one glyph. Empty fields keep the preset value.
type GlyphConfig struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

// GlyphsConfig holds per-cell glyph overrides.
type GlyphsConfig struct {
	Wall           GlyphConfig `yaml:"wall"`
	Floor          GlyphConfig `yaml:"floor"`
	Target         GlyphConfig `yaml:"target"`
	Block          GlyphConfig `yaml:"block"`
	BlockOnTarget  GlyphConfig `yaml:"block_on_target"`
	Player         GlyphConfig `yaml:"player"`
	PlayerOnTarget GlyphConfig `yaml:"player_on_target"`
}

// StorageConfig defines where solve records are kept.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = stderr outside the TUI, discarded inside it
}

// Backend names.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Validate checks values the loader cannot fix up on its own.
func (c SokobanConfig) Validate() error {
	switch c.Display.Backend {
	case BackendTea, BackendTcell:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", c.Display.Backend, BackendTea, BackendTcell)
	}
	if c.Levels.Start < 1 {
		return fmt.Errorf("config: start level must be 1 or greater, got %d", c.Levels.Start)
	}
	if c.Levels.Path == "" && c.Levels.Pack == "" {
		return fmt.Errorf("config: either levels.path or levels.pack must be set")
	}
	if _, ok := PresetTheme(GlyphPreset(c.Display.Preset)); !ok {
		return fmt.Errorf("config: unknown glyph preset %q", c.Display.Preset)
	}
	return nil
}

// Theme builds the drawing theme: the preset first, then per-glyph overrides.
// Invalid overrides are ignored.
func (d DisplayConfig) Theme() sokoban.Theme {
	theme, ok := PresetTheme(GlyphPreset(d.Preset))
	if !ok {
		theme = sokoban.DefaultTheme()
	}

	overrideGlyph(&theme.Wall, d.Glyphs.Wall)
	overrideGlyph(&theme.Floor, d.Glyphs.Floor)
	overrideGlyph(&theme.Target, d.Glyphs.Target)
	overrideGlyph(&theme.Block, d.Glyphs.Block)
	overrideGlyph(&theme.BlockOnTarget, d.Glyphs.BlockOnTarget)
	overrideGlyph(&theme.Player, d.Glyphs.Player)
	overrideGlyph(&theme.PlayerOnTarget, d.Glyphs.PlayerOnTarget)

	return theme
}

func overrideGlyph(dst *sokoban.Glyph, o GlyphConfig) {
	if o.Rune != "" {
		if r, _ := utf8.DecodeRuneInString(o.Rune); r != utf8.RuneError {
			dst.Rune = r
		}
	}
	if strings.TrimSpace(o.Color) != "" {
		if c, ok := core.ParseColor(o.Color); ok {
			dst.Color = c
		}
	}
}
