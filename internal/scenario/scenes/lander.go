package scenes

import (
	"fmt"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

func init() {
	scenario.Register("lander", func() scenario.Scenario { return NewLander() })
}

// Touchdown speed thresholds in world units per second.
const (
	landerSafeSpeed  = 3.0
	landerCrashSpeed = 8.0
)

// Lander drops a thrust-controlled ship toward a planet. Touch down below
// the safe speed to land; hit harder and the hull gives way.
type Lander struct {
	scenario.Sim
	physics config.PhysicsConfig

	ship    *scenario.Entity
	planet  *scenario.Entity
	landed  bool
	crashed bool
}

// NewLander creates the scenario with physics tuning from the config chain.
func NewLander() *Lander {
	p, _ := config.LoadPhysics("")
	return &Lander{physics: p}
}

func (l *Lander) ID() string    { return "lander" }
func (l *Lander) Title() string { return "Lander" }

func (l *Lander) Reset(cfg core.RuntimeConfig) {
	w := newWorld(l.physics)
	segs := segments(l.physics)

	planet := phys.NewBody(phys.NewCircle(30, segs*2), phys.Vec{Y: 70}, 8000).SetStatic()
	planet.Restitution = 0
	ship := phys.NewBody(phys.NewBox(3, 2), phys.Vec{X: 10, Y: -10}, 2)
	ship.Restitution = 0.1
	ship.Vel = phys.Vec{X: -4}

	w.AddBody(planet)
	w.AddBody(ship)

	l.planet = &scenario.Entity{Name: "planet", Kind: scenario.KindPlanet, Color: core.ColorGreen, Body: planet}
	l.ship = &scenario.Entity{Name: "ship", Kind: scenario.KindShip, Color: core.ColorBrightWhite, Body: ship}
	l.landed = false
	l.crashed = false

	l.Rebuild(cfg, w, []*scenario.Entity{l.planet, l.ship})
}

func (l *Lander) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		l.Reset(l.Cfg)
	}

	// Measure approach speed before the solver absorbs the contact.
	approach := l.ship.Body.Vel.Len()

	if l.Advance(in) && !l.landed && !l.crashed {
		if _, touching := phys.Detect(l.planet.Body, l.ship.Body); touching {
			switch {
			case approach >= landerCrashSpeed:
				l.crashed = true
			case approach <= landerSafeSpeed:
				l.landed = true
			}
		}
	}
	return core.StepResult{State: l.State()}
}

func (l *Lander) State() core.SimState {
	st := l.Sim.State()
	switch {
	case l.crashed:
		st.Status = "CRASHED - press r to retry"
	case l.landed:
		st.Status = "LANDED - press r to fly again"
	default:
		st.Status = fmt.Sprintf("%s  safe<%.0f", l.StatusSpeed(), landerSafeSpeed)
	}
	return st
}
