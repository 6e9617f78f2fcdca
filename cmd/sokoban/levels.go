package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available level packs",
	Long:  `Shows every built-in level pack, plus the --levels file when given.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	packs, err := loadAllPacks(cfg.Levels)
	if err != nil {
		return err
	}

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return nil
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, len(p.Levels), p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play --pack <id>' to play a pack.")
	return nil
}
