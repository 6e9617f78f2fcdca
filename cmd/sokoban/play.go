package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/term"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagBackend string
	flagLevel   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level pack",
	Long: `Start playing the selected level pack.

Controls:
  Arrows/WASD/HJKL - Move
  R                - Reset the level
  N / P            - Next / previous level
  ?                - More keys (tea backend)
  Q/Esc/Ctrl+C     - Quit

Backends:
  tea    - Bubble Tea (default)
  tcell  - direct tcell screen

Examples:
  sokoban play
  sokoban play --pack tutorial
  sokoban play --level 3
  sokoban play --levels ./levels.txt --backend tcell`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: tea, tcell")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (1-based)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		cfg.Display.Backend = flagBackend
	}
	if cmd.Flags().Changed("level") {
		cfg.Levels.Start = flagLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer closeLog()

	pack, err := loadPack(cfg.Levels)
	if err != nil {
		return err
	}

	store := openStore(cfg.Storage, logger)
	if store != nil {
		defer store.Close()
	}

	var run *storage.Run
	if store != nil {
		run = store.NewRun(pack.ID)
	}
	logger = logger.With("pack", pack.ID)

	session, err := sokoban.NewSession(pack.Levels,
		sokoban.WithLogger(logger),
		sokoban.WithStartLevel(cfg.Levels.Start-1),
		sokoban.WithSolveHook(run.SolveHook(logger)),
	)
	if err != nil {
		return err
	}
	logger.Info("game started", "run", run.ID(), "backend", cfg.Display.Backend, "level", session.Current()+1)

	theme := cfg.Display.Theme()
	switch cfg.Display.Backend {
	case config.BackendTcell:
		t, termErr := term.New(term.WithTheme(theme), term.WithHelp(cfg.Display.ShowHelp))
		if termErr != nil {
			return termErr
		}
		err = session.Run(t, t)
	default:
		err = tui.Run(session, tui.Options{
			Theme:    theme,
			ShowHelp: cfg.Display.ShowHelp,
			Title:    pack.Title,
		})
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSummary(session, run)
	return nil
}

// printSummary reports where the player stopped and what this run solved.
func printSummary(session *sokoban.Session, run *storage.Run) {
	if session.Complete() {
		fmt.Printf("All %d levels solved!\n", session.LevelCount())
	} else {
		fmt.Printf("Stopped on level %d/%d\n", session.Current()+1, session.LevelCount())
	}

	solves, err := run.Solves()
	if err != nil || len(solves) == 0 {
		return
	}
	fmt.Printf("Solved this run: %d\n", len(solves))
	for _, s := range solves {
		fmt.Printf("  level %-3d  %4d moves  %4d pushes\n", s.Level+1, s.Moves, s.Pushes)
	}
}
