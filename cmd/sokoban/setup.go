package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// filePackPrefix starts the pack id of levels loaded with --levels. The
// absolute file path follows it, so every file keeps its own records.
const filePackPrefix = "file:"

// loadConfig loads the config file and applies flags that were set.
func loadConfig(cmd *cobra.Command) (config.SokobanConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("pack") {
		cfg.Levels.Pack = flagPack
		cfg.Levels.Path = ""
	}
	if cmd.Flags().Changed("levels") {
		cfg.Levels.Path = flagLevels
	}
	if cmd.Flags().Changed("preset") {
		config.ApplyPreset(&cfg, config.GlyphPreset(flagPreset))
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DBPath = flagDBPath
		cfg.Storage.Enabled = flagDBPath != ""
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. Full-screen commands pass
// interactive so that, without a log file, logs do not corrupt the display.
// The returned function closes the log file.
func newLogger(cfg config.LogConfig, interactive bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q", cfg.Level)
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadPack loads the pack selected by cfg: the level file when set,
// otherwise the registered pack.
func loadPack(cfg config.LevelsConfig) (tui.Pack, error) {
	if cfg.Path != "" {
		src := sokoban.NewFileSource(cfg.Path)
		path, err := src.Resolve()
		if err != nil {
			return tui.Pack{}, err
		}
		levels, err := sokoban.LoadLevels(src)
		if err != nil {
			return tui.Pack{}, err
		}
		return tui.Pack{ID: filePackPrefix + path, Title: filepath.Base(path), Levels: levels}, nil
	}
	return loadRegistered(cfg.Pack)
}

// loadRegistered parses a pack from the registry.
func loadRegistered(id string) (tui.Pack, error) {
	src, err := registry.Open(id)
	if err != nil {
		return tui.Pack{}, err
	}
	levels, err := sokoban.LoadLevels(src)
	if err != nil {
		return tui.Pack{}, fmt.Errorf("pack %s: %w", id, err)
	}

	title := id
	for _, info := range registry.List() {
		if info.ID == id {
			title = info.Title
		}
	}
	return tui.Pack{ID: id, Title: title, Levels: levels}, nil
}

// loadAllPacks returns every registered pack, preceded by the level file
// when one is configured.
func loadAllPacks(cfg config.LevelsConfig) ([]tui.Pack, error) {
	var packs []tui.Pack
	if cfg.Path != "" {
		p, err := loadPack(cfg)
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	for _, info := range registry.List() {
		p, err := loadRegistered(info.ID)
		if err != nil {
			return nil, err
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// openStore opens the solves database. Play continues without it.
func openStore(cfg config.StorageConfig, logger *log.Logger) *storage.Store {
	if !cfg.Enabled || cfg.DBPath == "" {
		return nil
	}
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open solves database", "path", cfg.DBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		return nil
	}
	return store
}

// termSize returns the terminal size, or 80x24 when it is unknown.
func termSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
