package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagRecordsLevel int
	flagInteractive  bool
	flagClear        bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [pack]",
	Short: "Show best solves",
	Long: `Display the best solve of every level in a pack, or the top 10
solves of one level with --level.

The pack defaults to the configured one.

Examples:
  sokoban records
  sokoban records tutorial
  sokoban records classic --level 2
  sokoban records -i
  sokoban records tutorial --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecordsLevel, "level", 0, "Show the top solves of one level (1-based)")
	recordsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records interactively")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every record of the pack")
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Levels.Pack = args[0]
		cfg.Levels.Path = ""
	}

	logger, closeLog, err := newLogger(cfg.Log, flagInteractive)
	if err != nil {
		return err
	}
	defer closeLog()

	pack, err := loadPack(cfg.Levels)
	if err != nil {
		return err
	}

	if !cfg.Storage.Enabled || cfg.Storage.DBPath == "" {
		return errors.New("storage is disabled")
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening solves database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearSolves(pack.ID); err != nil {
			return fmt.Errorf("clearing records: %w", err)
		}
		logger.Info("records cleared", "pack", pack.ID)
		fmt.Printf("Cleared records of %s\n", pack.Title)
		return nil

	case flagInteractive:
		packs, err := loadAllPacks(cfg.Levels)
		if err != nil {
			return err
		}
		width, height := termSize()
		return tui.RunRecords(packs, store, pack.ID, width, height)

	case flagRecordsLevel > 0:
		return printLevelRecords(store, pack, flagRecordsLevel)

	default:
		return printPackRecords(store, pack)
	}
}

// printLevelRecords prints the top solves of one level.
func printLevelRecords(store *storage.Store, pack tui.Pack, level int) error {
	if level > len(pack.Levels) {
		return fmt.Errorf("%s has %d levels", pack.Title, len(pack.Levels))
	}

	solves, err := store.BestSolves(pack.ID, level-1, 10)
	if err != nil {
		return fmt.Errorf("retrieving records: %w", err)
	}

	fmt.Printf("Best solves - %s, level %d\n", pack.Title, level)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Moves", "Pushes", "When")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, s.Moves, s.Pushes, humanize.Time(s.CreatedAt))
	}
	return nil
}

// printPackRecords prints the best solve of every level and the pack totals.
func printPackRecords(store *storage.Store, pack tui.Pack) error {
	best, err := store.BestByLevel(pack.ID)
	if err != nil {
		return fmt.Errorf("retrieving records: %w", err)
	}
	byLevel := make(map[int]storage.SolveRecord, len(best))
	for _, r := range best {
		byLevel[r.Level] = r
	}

	fmt.Printf("Records - %s\n", pack.Title)
	fmt.Println()
	fmt.Printf("  %-5s  %-6s  %-6s  %s\n", "Level", "Moves", "Pushes", "Solved")
	fmt.Printf("  %-5s  %-6s  %-6s  %s\n", "-----", "-----", "------", "------")
	for i := range pack.Levels {
		r, ok := byLevel[i]
		if !ok {
			fmt.Printf("  %-5d  %-6s  %-6s  %s\n", i+1, "-", "-", "unsolved")
			continue
		}
		fmt.Printf("  %-5d  %-6d  %-6d  %s\n", i+1, r.Moves, r.Pushes, humanize.Time(r.CreatedAt))
	}

	stats, err := store.PackStats(pack.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if stats.Solves == 0 {
		return nil
	}
	fmt.Println()
	fmt.Printf("%d/%d levels solved, %s solves over %s runs, %s moves total\n",
		len(best), len(pack.Levels),
		humanize.Comma(int64(stats.Solves)), humanize.Comma(int64(stats.Runs)),
		humanize.Comma(int64(stats.TotalMoves)))
	return nil
}
