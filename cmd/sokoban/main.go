// sokoban is a terminal Sokoban player.
//
// Usage:
//
//	sokoban play              - Play the selected pack
//	sokoban menu              - Pick a pack interactively
//	sokoban levels            - List available level packs
//	sokoban records [pack]    - Show best solves
//	sokoban serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.sokoban/configs, ./configs)
//	--levels <file>     - Play levels from a file instead of a built-in pack
//	--pack <id>         - Built-in pack to play (default: classic)
//	--preset <name>     - Glyph preset: classic, unicode, mono
//	--db <path>         - Solves database (default: ~/.sokoban/scores.db)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLevels   string
	flagPack     string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push blocks onto targets in your terminal",
	Long: `Sokoban is a terminal puzzle game: walk the warehouse keeper around
and push every block onto a target square.

Available commands:
  play     - Play a level pack directly
  menu     - Interactive pack picker
  levels   - Show all available level packs
  records  - View best solves
  serve    - Start SSH server for remote play

Examples:
  sokoban play
  sokoban play --pack tutorial --level 2
  sokoban play --levels ./my-levels.txt --backend tcell
  sokoban menu
  sokoban records classic
  sokoban serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level file to play instead of a built-in pack")
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "Built-in level pack id")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Glyph preset: classic, unicode, mono")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}
