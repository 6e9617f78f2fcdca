package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultSokobanConfig returns the default configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Levels: LevelsConfig{
			Pack:  sokoban.DefaultPack,
			Start: 1,
		},
		Display: DisplayConfig{
			Backend:  BackendTea,
			Preset:   string(PresetClassic),
			ShowHelp: true,
		},
		Storage: StorageConfig{
			Enabled: true,
			DBPath:  "~/.sokoban/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSokobanYAML
}
