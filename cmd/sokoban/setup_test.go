package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

func TestLoadPackRegistered(t *testing.T) {
	p, err := loadPack(config.LevelsConfig{Pack: "tutorial"})
	if err != nil {
		t.Fatalf("loadPack() error = %v", err)
	}
	if p.ID != "tutorial" || p.Title != "Tutorial" {
		t.Errorf("pack = %s/%s, want tutorial/Tutorial", p.ID, p.Title)
	}
	if len(p.Levels) != 3 {
		t.Errorf("levels = %d, want 3", len(p.Levels))
	}
}

func TestLoadPackUnknown(t *testing.T) {
	if _, err := loadPack(config.LevelsConfig{Pack: "nope"}); err == nil {
		t.Error("expected error for unknown pack")
	}
}

func TestLoadPackFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.txt")
	if err := os.WriteFile(path, []byte("X@*.X\n*\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.LevelsConfig{Pack: "classic", Path: path}
	p, err := loadPack(cfg)
	if err != nil {
		t.Fatalf("loadPack() error = %v", err)
	}
	if p.ID != filePackPrefix+path || p.Title != "mine.txt" || len(p.Levels) != 1 {
		t.Errorf("pack = %+v", p)
	}

	all, err := loadAllPacks(cfg)
	if err != nil {
		t.Fatalf("loadAllPacks() error = %v", err)
	}
	if len(all) < 3 || all[0].ID != p.ID {
		t.Errorf("loadAllPacks() should list the file first, got %d packs", len(all))
	}
}

func TestLoadPackFileIDs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(home, name), []byte("X@*.X\n*\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	a, err := loadPack(config.LevelsConfig{Path: filepath.Join(home, "a.txt")})
	if err != nil {
		t.Fatalf("loadPack(a) error = %v", err)
	}
	b, err := loadPack(config.LevelsConfig{Path: filepath.Join(home, "b.txt")})
	if err != nil {
		t.Fatalf("loadPack(b) error = %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("two level files share the pack id %q", a.ID)
	}
	if !strings.HasPrefix(a.ID, filePackPrefix) || !strings.HasSuffix(a.ID, "a.txt") {
		t.Errorf("file pack id = %q", a.ID)
	}

	tilde, err := loadPack(config.LevelsConfig{Path: "~/a.txt"})
	if err != nil {
		t.Fatalf("loadPack(~/a.txt) error = %v", err)
	}
	if tilde.ID != a.ID {
		t.Errorf("~ path id = %q, want %q", tilde.ID, a.ID)
	}
}

func TestNewLoggerErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"bad level", config.LogConfig{Level: "loud"}},
		{"bad level with file", config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}},
		{"unwritable file", config.LogConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := newLogger(tt.cfg, false); err == nil {
				t.Error("expected an error")
			}
			if tt.cfg.File != "" {
				if _, err := os.Stat(tt.cfg.File); err == nil {
					t.Error("log file should not be created on error")
				}
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "sokoban.log")
	logger, closeLog, err := newLogger(config.LogConfig{Level: "warn", File: logFile}, true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closeLog()

	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); !strings.Contains(got, "shown") || strings.Contains(got, "hidden") {
		t.Errorf("log file = %q", got)
	}
}

func TestPlayReturnsErrors(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	logFile := filepath.Join(dir, "play.log")

	rootCmd.SetArgs([]string{"play", "--pack", "nope", "--db", "", "--log-file", logFile})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected play to return an error for an unknown pack")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the pack, got %v", err)
	}
	if _, statErr := os.Stat(logFile); statErr != nil {
		t.Errorf("log file should have been opened: %v", statErr)
	}
}
