package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SokobanConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultSokobanConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultSokobanConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("levels:\n  path: /tmp/levels.txt\n  start: 3\ndisplay:\n  backend: tcell\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Levels.Path != "/tmp/levels.txt" || cfg.Levels.Start != 3 {
		t.Errorf("levels = %+v", cfg.Levels)
	}
	if cfg.Display.Backend != BackendTcell {
		t.Errorf("backend = %q, want tcell", cfg.Display.Backend)
	}
	// Unset values keep their defaults.
	if cfg.Levels.Pack != sokoban.DefaultPack || !cfg.Display.ShowHelp {
		t.Errorf("defaults lost: pack = %q, show_help = %v", cfg.Levels.Pack, cfg.Display.ShowHelp)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultSokobanConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory.
	writeConfig(t, filepath.Join(work, "configs", FileName), "levels:\n  pack: tutorial\n")
	cfg, _ = Load("")
	if cfg.Levels.Pack != "tutorial" {
		t.Errorf("local config not used, pack = %q", cfg.Levels.Pack)
	}

	// User directory wins over local.
	writeConfig(t, filepath.Join(home, ".sokoban", "configs", FileName), "levels:\n  pack: mine\n")
	cfg, _ = Load("")
	if cfg.Levels.Pack != "mine" {
		t.Errorf("user config not used, pack = %q", cfg.Levels.Pack)
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SokobanConfig)
		wantErr bool
	}{
		{"defaults", func(*SokobanConfig) {}, false},
		{"tcell backend", func(c *SokobanConfig) { c.Display.Backend = BackendTcell }, false},
		{"unknown backend", func(c *SokobanConfig) { c.Display.Backend = "gtk" }, true},
		{"zero start", func(c *SokobanConfig) { c.Levels.Start = 0 }, true},
		{"no level source", func(c *SokobanConfig) { c.Levels.Pack = "" }, true},
		{"path without pack", func(c *SokobanConfig) { c.Levels.Pack = ""; c.Levels.Path = "levels.txt" }, false},
		{"unknown preset", func(c *SokobanConfig) { c.Display.Preset = "neon" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSokobanConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestThemeOverrides(t *testing.T) {
	d := DefaultSokobanConfig().Display
	d.Glyphs.Wall = GlyphConfig{Rune: "#", Color: "Bright_Red"}
	d.Glyphs.Player = GlyphConfig{Color: "not-a-color"}
	d.Glyphs.Target = GlyphConfig{Rune: "°"}

	theme := d.Theme()
	def := sokoban.DefaultTheme()

	if theme.Wall != (sokoban.Glyph{Rune: '#', Color: core.ColorBrightRed}) {
		t.Errorf("wall = %+v", theme.Wall)
	}
	if theme.Player != def.Player {
		t.Errorf("invalid color should be ignored, player = %+v", theme.Player)
	}
	if theme.Target.Rune != '°' || theme.Target.Color != def.Target.Color {
		t.Errorf("target = %+v", theme.Target)
	}
	if theme.Block != def.Block {
		t.Errorf("block should keep the preset glyph, got %+v", theme.Block)
	}
}

func TestPresets(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p), func(t *testing.T) {
			theme, ok := PresetTheme(p)
			if !ok {
				t.Fatalf("preset %q unknown", p)
			}
			if theme.Block == theme.BlockOnTarget {
				t.Error("block and block on target must be distinguishable")
			}
			if theme.Player.Rune == 0 || theme.Wall.Rune == 0 {
				t.Error("preset has empty glyphs")
			}
		})
	}

	if _, ok := PresetTheme("neon"); ok {
		t.Error("unknown preset should not resolve")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSokobanConfig()
	cfg.Display.Glyphs.Wall.Rune = "#"

	ApplyPreset(&cfg, PresetUnicode)

	if cfg.Display.Preset != "unicode" {
		t.Errorf("preset = %q", cfg.Display.Preset)
	}
	if cfg.Display.Theme().Wall.Rune != '█' {
		t.Errorf("wall rune = %q, want █", cfg.Display.Theme().Wall.Rune)
	}
}
