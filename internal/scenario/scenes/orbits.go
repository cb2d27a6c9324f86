package scenes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

func init() {
	scenario.Register("orbits", func() scenario.Scenario { return NewOrbits() })
}

// Orbits is a small planetary system: a static sun, planets on circular
// orbits and a seeded belt of draggable debris between them.
type Orbits struct {
	scenario.Sim
	physics config.PhysicsConfig
}

// NewOrbits creates the scenario with physics tuning from the config chain.
func NewOrbits() *Orbits {
	p, _ := config.LoadPhysics("")
	return &Orbits{physics: p}
}

func (o *Orbits) ID() string    { return "orbits" }
func (o *Orbits) Title() string { return "Orbits" }

// Reset spawns the system. The debris belt is generated from the config seed
// so runs are reproducible.
func (o *Orbits) Reset(cfg core.RuntimeConfig) {
	w := newWorld(o.physics)
	segs := segments(o.physics)
	g := w.Params.G

	const sunMass = 4000
	sun := phys.NewBody(phys.NewCircle(6, segs), phys.Vec{}, sunMass).SetStatic()

	entities := []*scenario.Entity{
		{Name: "sun", Kind: scenario.KindPlanet, Color: core.ColorBrightYellow, Body: sun},
	}
	w.AddBody(sun)

	planets := []struct {
		name   string
		radius float64
		orbit  float64
		mass   float64
		color  core.Color
		dir    float64
	}{
		{"rock", 2, 24, 40, core.ColorRed, 1},
		{"dust", 2.5, 38, 60, core.ColorCyan, -1},
		{"ice", 3, 54, 80, core.ColorBrightBlue, 1},
	}
	for _, p := range planets {
		b := phys.NewBody(phys.NewCircle(p.radius, segs), phys.Vec{X: p.orbit}, p.mass)
		b.Vel = phys.Vec{Y: p.dir * orbitSpeed(g, sunMass, p.orbit)}
		w.AddBody(b)
		entities = append(entities, &scenario.Entity{
			Name: p.name, Kind: scenario.KindPlanet, Color: p.color, Body: b,
		})
	}

	// Debris belt between the middle and outer planet.
	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := 0; i < 8; i++ {
		angle := rng.Float64() * 2 * math.Pi
		radius := 42 + rng.Float64()*8
		pos := phys.Rotation(angle).Apply(phys.Vec{X: radius})
		b := phys.NewBody(phys.NewBox(1.5, 1.5), pos, 0.5)
		b.Vel = pos.Normalize().Rot90().Scale(orbitSpeed(g, sunMass, radius))
		w.AddBody(b)
		entities = append(entities, &scenario.Entity{
			Name: fmt.Sprintf("debris-%d", i), Kind: scenario.KindCrate,
			Color: core.ColorGray, Body: b,
		})
	}

	o.Rebuild(cfg, w, entities)
}

func (o *Orbits) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		o.Reset(o.Cfg)
	}
	o.Advance(in)
	return core.StepResult{State: o.State()}
}

func (o *Orbits) State() core.SimState {
	st := o.Sim.State()
	st.Status = fmt.Sprintf("bodies=%d drag to perturb", st.Bodies)
	return st
}
