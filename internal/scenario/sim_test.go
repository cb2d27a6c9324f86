package scenario

import (
	"testing"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
)

func newTestSim(t *testing.T, entities ...*Entity) *Sim {
	t.Helper()
	// A cutoff above every mass turns gravity off, isolating the
	// interaction plumbing under test.
	w := phys.NewWorld(phys.Params{MassCutoff: 1e18})
	for _, e := range entities {
		w.AddBody(e.Body)
	}
	s := &Sim{}
	s.Rebuild(core.DefaultConfig(), w, entities)
	return s
}

func TestSimPauseToggle(t *testing.T) {
	e := &Entity{Name: "crate", Kind: KindCrate, Body: phys.NewBody(phys.NewBox(2, 2), phys.Vec{}, 1)}
	s := newTestSim(t, e)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	if s.Advance(in) {
		t.Error("paused tick still advanced")
	}
	if s.Tick() != 0 || !s.Paused() {
		t.Errorf("pause not applied: tick=%d paused=%v", s.Tick(), s.Paused())
	}

	// Same action again unpauses and the tick runs.
	if !s.Advance(in) {
		t.Error("unpaused tick did not advance")
	}
	if s.Tick() != 1 || s.Paused() {
		t.Errorf("unpause not applied: tick=%d paused=%v", s.Tick(), s.Paused())
	}
}

func TestSimThrustDrivesFirstShip(t *testing.T) {
	crate := &Entity{Name: "crate", Kind: KindCrate, Body: phys.NewBody(phys.NewBox(2, 2), phys.Vec{X: 50}, 1)}
	ship := &Entity{Name: "ship", Kind: KindShip, Body: phys.NewBody(phys.NewBox(2, 2), phys.Vec{}, 1)}
	s := newTestSim(t, crate, ship)

	if s.Controlled() != ship {
		t.Fatal("controlled entity is not the ship")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionThrustRight)
	s.Advance(in)

	if ship.Body.Vel.X <= 0 {
		t.Errorf("thrust did not accelerate the ship: %v", ship.Body.Vel)
	}

	// Opposing directions cancel instead of normalizing to garbage.
	in.Set(core.ActionThrustLeft)
	vel := ship.Body.Vel
	s.Advance(in)
	if !vecClose(ship.Body.Vel, vel) {
		t.Errorf("cancelling thrust changed velocity: %v -> %v", vel, ship.Body.Vel)
	}
}

func TestSimPointerDrag(t *testing.T) {
	e := &Entity{Name: "crate", Kind: KindCrate, Body: phys.NewBody(phys.NewBox(4, 4), phys.Vec{}, 1)}
	s := newTestSim(t, e)

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 1, Y: 0, Engaged: true}
	s.Advance(in)

	if s.Dragging() != e {
		t.Fatal("engaged pointer over the crate did not grab it")
	}

	// Pull right for a while; the crate must follow.
	in.Pointer = core.Pointer{X: 20, Y: 0, Engaged: true}
	for i := 0; i < 30; i++ {
		s.Advance(in)
	}
	if e.Body.Vel.X <= 0 && e.Body.Pos.X <= 0 {
		t.Errorf("drag did not move the crate: pos=%v vel=%v", e.Body.Pos, e.Body.Vel)
	}

	in.Pointer = core.Pointer{Engaged: false}
	s.Advance(in)
	if s.Dragging() != nil {
		t.Error("released pointer kept its grab")
	}
}

func TestSimPointerIgnoresStaticAndMisses(t *testing.T) {
	planet := &Entity{Name: "planet", Kind: KindPlanet, Body: phys.NewBody(phys.NewBox(4, 4), phys.Vec{}, 100).SetStatic()}
	s := newTestSim(t, planet)

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: 0, Y: 0, Engaged: true}
	s.Advance(in)
	if s.Dragging() != nil {
		t.Error("grabbed a static body")
	}

	crate := &Entity{Name: "crate", Kind: KindCrate, Body: phys.NewBody(phys.NewBox(2, 2), phys.Vec{X: 50}, 1)}
	s = newTestSim(t, crate)
	in.Pointer = core.Pointer{X: 0, Y: 0, Engaged: true}
	s.Advance(in)
	if s.Dragging() != nil {
		t.Error("grabbed empty space")
	}
}

func TestSimRebuildResetsState(t *testing.T) {
	e := &Entity{Name: "crate", Kind: KindCrate, Body: phys.NewBody(phys.NewBox(2, 2), phys.Vec{}, 1)}
	s := newTestSim(t, e)

	in := core.NewInputFrame()
	for i := 0; i < 5; i++ {
		s.Advance(in)
	}
	if s.Tick() != 5 {
		t.Fatalf("tick = %d, want 5", s.Tick())
	}

	fresh := &Entity{Name: "crate", Kind: KindCrate, Body: phys.NewBody(phys.NewBox(2, 2), phys.Vec{}, 1)}
	w := phys.NewWorld(phys.Params{})
	w.AddBody(fresh.Body)
	s.Rebuild(core.DefaultConfig(), w, []*Entity{fresh})

	if s.Tick() != 0 || s.Paused() || s.Dragging() != nil {
		t.Errorf("rebuild left stale state: tick=%d paused=%v", s.Tick(), s.Paused())
	}
	st := s.State()
	if st.Bodies != 1 || st.Tick != 0 {
		t.Errorf("state after rebuild: %+v", st)
	}
}

func vecClose(a, b phys.Vec) bool {
	return a.Sub(b).Len() < 1e-9
}
