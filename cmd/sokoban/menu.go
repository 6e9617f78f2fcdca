package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a pack picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a pack.
Leaving a game returns to the menu. Tab opens the records view.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select pack
  Tab          - Records
  Q            - Quit

Examples:
  sokoban menu
  sokoban menu --levels ./levels.txt
  sokoban menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer closeLog()

	packs, err := loadAllPacks(cfg.Levels)
	if err != nil {
		return err
	}

	store := openStore(cfg.Storage, logger)
	if store != nil {
		defer store.Close()
	}

	width, height := termSize()
	opts := tui.Options{
		Theme:    cfg.Display.Theme(),
		ShowHelp: cfg.Display.ShowHelp,
	}
	return tui.RunSession(packs, store, opts, logger, width, height)
}
