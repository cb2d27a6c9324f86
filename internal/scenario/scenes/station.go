package scenes

import (
	"fmt"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

func init() {
	scenario.Register("station", func() scenario.Scenario { return NewStation() })
}

// Station orbits a welded three-module assembly around a planet. Dragging one
// module tugs the whole station; the weld constraint keeps it rigid.
type Station struct {
	scenario.Sim
	physics config.PhysicsConfig

	modules []*scenario.Entity
	nominal float64 // hub-to-wing distance at spawn
}

// NewStation creates the scenario with physics tuning from the config chain.
func NewStation() *Station {
	p, _ := config.LoadPhysics("")
	return &Station{physics: p}
}

func (s *Station) ID() string    { return "station" }
func (s *Station) Title() string { return "Station" }

func (s *Station) Reset(cfg core.RuntimeConfig) {
	w := newWorld(s.physics)
	segs := segments(s.physics)
	g := w.Params.G

	const planetMass = 5000
	planet := phys.NewBody(phys.NewCircle(8, segs), phys.Vec{}, planetMass).SetStatic()
	w.AddBody(planet)

	// Hub plus two wings, welded into one assembly on a circular orbit.
	const orbit = 40.0
	v := orbitSpeed(g, planetMass, orbit)

	hub := phys.NewBody(phys.NewBox(4, 4), phys.Vec{X: orbit}, 6)
	left := phys.NewBody(phys.NewBox(6, 2), phys.Vec{X: orbit, Y: -5}, 2)
	right := phys.NewBody(phys.NewBox(6, 2), phys.Vec{X: orbit, Y: 5}, 2)
	for _, b := range []*phys.Body{hub, left, right} {
		b.Vel = phys.Vec{Y: v}
		w.AddBody(b)
	}

	weld, err := phys.NewWeldGroup(hub, left, right)
	if err != nil {
		// All members are movable by construction.
		panic(err)
	}
	w.AddWeld(weld)

	s.modules = []*scenario.Entity{
		{Name: "hub", Kind: scenario.KindShip, Color: core.ColorBrightWhite, Body: hub},
		{Name: "wing-a", Kind: scenario.KindCrate, Color: core.ColorCyan, Body: left},
		{Name: "wing-b", Kind: scenario.KindCrate, Color: core.ColorCyan, Body: right},
	}
	s.nominal = hub.Pos.Distance(left.Pos)

	entities := append([]*scenario.Entity{
		{Name: "planet", Kind: scenario.KindPlanet, Color: core.ColorGreen, Body: planet},
	}, s.modules...)

	s.Rebuild(cfg, w, entities)
}

func (s *Station) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		s.Reset(s.Cfg)
	}
	s.Advance(in)
	return core.StepResult{State: s.State()}
}

// drift reports how far the wings have strayed from their spawn distance to
// the hub, as a fraction of that distance.
func (s *Station) drift() float64 {
	hub := s.modules[0].Body
	worst := 0.0
	for _, m := range s.modules[1:] {
		d := hub.Pos.Distance(m.Body.Pos)
		if f := abs(d-s.nominal) / s.nominal; f > worst {
			worst = f
		}
	}
	return worst
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func (s *Station) State() core.SimState {
	st := s.Sim.State()
	st.Status = fmt.Sprintf("weld drift %.1f%%  drag the hub", s.drift()*100)
	return st
}
