package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/platform/tui"
	"github.com/vovakirdan/gravbox/internal/scenario"
	"github.com/vovakirdan/gravbox/internal/scenario/scenes"
	"github.com/vovakirdan/gravbox/internal/storage"
)

var flagScene string

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene",
	Long: `Start the specified scene interactively.

Controls:
  W/A/S/D     - Thrust (when the scene has a ship)
  Mouse drag  - Grab and move bodies
  +/-         - Zoom
  P/Space     - Pause
  R           - Reset the scene
  B/Esc       - Back
  Q/Ctrl+C    - Quit

Examples:
  gravbox play orbits
  gravbox play lander --fps 30
  gravbox play playground --scene ./my-scene.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScene, "scene", "", "Path to a custom scene YAML (playground only)")
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !scenario.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'gravbox list' to see available scenes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	scen, err := scenario.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Route the custom scene file to the playground
	if flagScene != "" {
		pg, ok := scen.(*scenes.Playground)
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: --scene only applies to the playground scene")
			os.Exit(1)
		}
		pg.ScenePath = flagScene
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the scene still works
		store = nil
	}

	runErr := tui.Run(scen, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
