package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
	"github.com/vovakirdan/gravbox/internal/scenario/scenes"
	"github.com/vovakirdan/gravbox/internal/storage"
)

var (
	flagRunTicks int
	flagRunScene string
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Run a scene headless",
	Long: `Simulate a scene without a UI for a fixed number of ticks and record
the result. Useful for benchmarking scenes and checking their stability.

The recorded run includes the tick count, body count, wall-clock time and
the relative momentum drift over the run.

Examples:
  gravbox run orbits --ticks 3600
  gravbox run stack --ticks 7200 --no-save
  gravbox run playground --scene ./my-scene.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagRunTicks, "ticks", 3600, "Number of ticks to simulate")
	runCmd.Flags().StringVar(&flagRunScene, "scene", "", "Path to a custom scene YAML (playground only)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the database")
}

func runHeadless(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravbox",
	})

	sceneID := args[0]
	if !scenario.Exists(sceneID) {
		logger.Error("unknown scene", "scene", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'gravbox list' to see available scenes.")
		os.Exit(1)
	}

	scen, err := scenario.Create(sceneID)
	if err != nil {
		logger.Fatal("cannot create scene", "error", err)
	}
	if flagRunScene != "" {
		pg, ok := scen.(*scenes.Playground)
		if !ok {
			logger.Fatal("--scene only applies to the playground scene")
		}
		pg.ScenePath = flagRunScene
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	scen.Reset(cfg)
	logger.Info("starting run",
		"scene", sceneID,
		"ticks", flagRunTicks,
		"bodies", len(scen.World().Bodies),
		"seed", cfg.Seed,
	)

	startMomentum := totalMomentum(scen.World())
	start := time.Now()

	in := core.NewInputFrame()
	var state core.SimState
	for i := 0; i < flagRunTicks; i++ {
		state = scen.Step(in).State
	}

	elapsed := time.Since(start)
	drift := momentumDrift(startMomentum, totalMomentum(scen.World()))

	logger.Info("run finished",
		"ticks", state.Tick,
		"bodies", state.Bodies,
		"wall", elapsed.Round(time.Millisecond),
		"drift", fmt.Sprintf("%.6f", drift),
		"status", state.Status,
	)

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.RunEntry{
		ScenarioID: sceneID,
		Ticks:      state.Tick,
		Bodies:     state.Bodies,
		WallMS:     elapsed.Milliseconds(),
		Drift:      drift,
	}); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}

// totalMomentum sums linear momentum over the movable bodies.
func totalMomentum(w *phys.World) phys.Vec {
	var p phys.Vec
	for _, b := range w.Bodies {
		if !b.Movable() {
			continue
		}
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// momentumDrift reports the relative momentum change between two snapshots.
func momentumDrift(before, after phys.Vec) float64 {
	scale := before.Len()
	if scale < 1 {
		scale = 1
	}
	return after.Sub(before).Len() / scale
}
