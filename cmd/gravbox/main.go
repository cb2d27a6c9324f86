// gravbox is a terminal physics sandbox: rigid bodies, gravity and welds
// rendered as ASCII, playable locally or over SSH.
//
// Usage:
//
//	gravbox list              - List available scenes
//	gravbox play <scene>      - Run a scene interactively
//	gravbox menu              - Start menu to pick scenes interactively
//	gravbox run <scene>       - Run a scene headless for N ticks
//	gravbox serve             - Start SSH server for remote play
//	gravbox history <scene>   - Show recorded runs for a scene
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible scenes
//	--db <path>     - Set database path (default: ~/.gravbox/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/gravbox/internal/scenario/scenes"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravbox",
	Short: "Gravbox - A rigid-body physics sandbox in your terminal",
	Long: `Gravbox simulates 2D rigid bodies with N-body gravity, collisions
and welded structures, rendered as ASCII in the terminal.

Available commands:
  list     - Show all available scenes
  play     - Run a specific scene directly
  menu     - Interactive scene picker menu
  run      - Run a scene headless and record the result
  serve    - Start SSH server for remote play
  history  - View recorded runs

Examples:
  gravbox list
  gravbox play orbits
  gravbox play playground --scene ./my-scene.yaml
  gravbox menu
  gravbox run stack --ticks 3600
  gravbox serve --ssh :2222
  gravbox history orbits`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravbox/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
