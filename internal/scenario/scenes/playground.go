package scenes

import (
	"fmt"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

func init() {
	scenario.Register("playground", func() scenario.Scenario { return NewPlayground() })
}

// Playground spawns a user-defined scene from a YAML file. With no explicit
// path it walks the usual config chain down to the embedded default scene.
type Playground struct {
	scenario.Sim

	// ScenePath optionally points at an explicit scene file. Set it before
	// the first Reset.
	ScenePath string

	loadErr error
}

// NewPlayground creates the scenario; the scene file is read on Reset so a
// restart picks up edits.
func NewPlayground() *Playground {
	return &Playground{}
}

func (p *Playground) ID() string    { return "playground" }
func (p *Playground) Title() string { return "Playground" }

func (p *Playground) Reset(cfg core.RuntimeConfig) {
	scene, err := config.LoadPlayground(p.ScenePath)
	p.loadErr = err
	if err != nil {
		// Keep the session alive on a broken file; show the error in the
		// status line over an empty world.
		p.Rebuild(cfg, newWorld(config.DefaultPhysicsConfig()), nil)
		return
	}

	w := newWorld(scene.Physics)
	segs := segments(scene.Physics)

	entities := make([]*scenario.Entity, 0, len(scene.Bodies))
	for i, bc := range scene.Bodies {
		var mesh phys.Mesh
		switch bc.Kind {
		case "circle":
			mesh = phys.NewCircle(bc.Radius, segs)
		default:
			mesh = phys.NewBox(bc.Width, bc.Height)
		}

		b := phys.NewBody(mesh, phys.Vec{X: bc.X, Y: bc.Y}, bc.Mass)
		b.Vel = phys.Vec{X: bc.VelX, Y: bc.VelY}
		if bc.Restitution > 0 {
			b.Restitution = bc.Restitution
		}
		if bc.Static {
			b.SetStatic()
		}
		w.AddBody(b)

		kind := scenario.KindCrate
		if bc.Static {
			kind = scenario.KindPlanet
		}
		entities = append(entities, &scenario.Entity{
			Name:  fmt.Sprintf("body-%d", i),
			Kind:  kind,
			Color: colorByName(bc.Color),
			Body:  b,
		})
	}

	for _, wc := range scene.Welds {
		members := make([]*phys.Body, len(wc.Bodies))
		for i, idx := range wc.Bodies {
			members[i] = entities[idx].Body
		}
		weld, err := phys.NewWeldGroup(members...)
		if err != nil {
			// Validate() already rejected static members; this only
			// fires on degenerate hand-written scenes.
			p.loadErr = err
			continue
		}
		w.AddWeld(weld)
	}

	w.Settle()
	p.Rebuild(cfg, w, entities)
}

func (p *Playground) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		p.Reset(p.Cfg)
	}
	p.Advance(in)
	return core.StepResult{State: p.State()}
}

func (p *Playground) State() core.SimState {
	st := p.Sim.State()
	if p.loadErr != nil {
		st.Status = fmt.Sprintf("scene error: %v", p.loadErr)
	} else {
		st.Status = fmt.Sprintf("bodies=%d welds=%d", st.Bodies, len(p.World().Welds))
	}
	return st
}
