package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravbox/internal/scenario"
	"github.com/vovakirdan/gravbox/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history <scene>",
	Short: "Show recorded runs for a scene",
	Long: `Display the most recent recorded runs for the specified scene.

Examples:
  gravbox history orbits
  gravbox history stack`,
	Args: cobra.ExactArgs(1),
	Run:  runHistoryCmd,
}

func runHistoryCmd(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !scenario.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'gravbox list' to see available scenes.")
		os.Exit(1)
	}

	// Get scene title
	scen, err := scenario.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}
	title := scen.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gravbox play %s' to record the first run!\n", sceneID)
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-7s  %-9s  %s\n", "When", "Ticks", "Bodies", "Wall ms", "Drift")
	fmt.Printf("  %-16s  %-8s  %-7s  %-9s  %s\n", "----", "-----", "------", "-------", "-----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8d  %-7d  %-9d  %.4f\n", dateStr, r.Ticks, r.Bodies, r.WallMS, r.Drift)
	}

	fmt.Println()
	longest, err := store.LongestRun(sceneID)
	if err == nil && longest > 0 {
		fmt.Printf("Longest: %d ticks\n", longest)
	}
	if best, ok, err := store.BestRun(sceneID); err == nil && ok {
		fmt.Printf("Best drift: %.4f (%d ticks)\n", best.Drift, best.Ticks)
	}
}
