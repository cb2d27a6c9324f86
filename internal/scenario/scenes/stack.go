package scenes

import (
	"fmt"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

func init() {
	scenario.Register("stack", func() scenario.Scenario { return NewStack() })
}

// Stack drops a pyramid of crates onto a massive slab that doubles as the
// gravity source. Good for poking at contact resolution with the pointer.
type Stack struct {
	scenario.Sim
	physics config.PhysicsConfig
}

// NewStack creates the scenario with physics tuning from the config chain.
func NewStack() *Stack {
	p, _ := config.LoadPhysics("")
	return &Stack{physics: p}
}

func (s *Stack) ID() string    { return "stack" }
func (s *Stack) Title() string { return "Crate Stack" }

func (s *Stack) Reset(cfg core.RuntimeConfig) {
	w := newWorld(s.physics)

	ground := phys.NewBody(phys.NewBox(120, 8), phys.Vec{Y: 20}, 50).SetStatic()
	ground.Restitution = 0
	w.AddBody(ground)
	entities := []*scenario.Entity{
		{Name: "ground", Kind: scenario.KindPlanet, Color: core.ColorGreen, Body: ground},
	}

	// Pyramid of crates, four rows, slightly spaced so the drop settles
	// instead of starting interpenetrated.
	const (
		crate   = 3.0
		spacing = 3.2
		rows    = 4
	)
	n := 0
	for row := 0; row < rows; row++ {
		count := rows - row
		y := 14 - float64(row)*spacing
		x0 := -spacing * float64(count-1) / 2
		for i := 0; i < count; i++ {
			b := phys.NewBody(phys.NewBox(crate, crate), phys.Vec{X: x0 + float64(i)*spacing, Y: y}, 2)
			b.Restitution = 0.1
			w.AddBody(b)
			entities = append(entities, &scenario.Entity{
				Name: fmt.Sprintf("crate-%d", n), Kind: scenario.KindCrate,
				Color: core.ColorOrange, Body: b,
			})
			n++
		}
	}

	w.Settle()
	s.Rebuild(cfg, w, entities)
}

func (s *Stack) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionReset) {
		s.Reset(s.Cfg)
	}
	s.Advance(in)
	return core.StepResult{State: s.State()}
}

// moving counts crates above a small speed threshold.
func (s *Stack) moving() int {
	n := 0
	for _, e := range s.Entities() {
		if e.Kind == scenario.KindCrate && e.Body.Vel.Len() > 0.5 {
			n++
		}
	}
	return n
}

func (s *Stack) State() core.SimState {
	st := s.Sim.State()
	st.Status = fmt.Sprintf("moving=%d", s.moving())
	return st
}
