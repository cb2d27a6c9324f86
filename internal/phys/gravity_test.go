package phys

import (
	"testing"
)

func newGravityWorld() *World {
	return NewWorld(Params{G: 10, MassCutoff: 1, Substeps: 1})
}

func TestGravityAttractsTowardHeavyBody(t *testing.T) {
	w := newGravityWorld()
	sun := w.AddBody(NewBody(NewCircle(5, 8), Vec{0, 0}, 1000))
	moon := w.AddBody(NewBody(NewBox(1, 1), Vec{100, 0}, 2))

	w.accumulateGravity(0.1)

	if imp := w.GravityImpulse(moon); imp.X >= 0 {
		t.Errorf("light body not pulled toward heavy body: %v", imp)
	}
	if imp := w.GravityImpulse(sun); imp.X <= 0 {
		t.Errorf("heavy body not pulled toward light body: %v", imp)
	}
	if w.Bodies[moon].Vel.X >= 0 {
		t.Errorf("impulse not applied: moon vel %v", w.Bodies[moon].Vel)
	}
}

func TestGravityConservesMomentum(t *testing.T) {
	w := newGravityWorld()
	w.AddBody(NewBody(NewBox(2, 2), Vec{0, 0}, 50))
	w.AddBody(NewBody(NewBox(2, 2), Vec{30, 10}, 20))
	w.AddBody(NewBody(NewBox(2, 2), Vec{-15, 25}, 35))

	var before Vec
	for _, b := range w.Bodies {
		before = before.Add(b.Vel.Scale(b.Mass))
	}
	for i := 0; i < 50; i++ {
		w.accumulateGravity(0.01)
	}
	var after Vec
	for _, b := range w.Bodies {
		after = after.Add(b.Vel.Scale(b.Mass))
	}

	if !vecAlmostEqual(before, after) {
		t.Errorf("momentum drifted: %v -> %v", before, after)
	}
}

func TestGravityInverseSquareFalloff(t *testing.T) {
	// Doubling the distance must quarter the impulse magnitude.
	near := newGravityWorld()
	near.AddBody(NewBody(NewBox(1, 1), Vec{0, 0}, 100))
	p := near.AddBody(NewBody(NewBox(1, 1), Vec{10, 0}, 100))

	far := newGravityWorld()
	far.AddBody(NewBody(NewBox(1, 1), Vec{0, 0}, 100))
	q := far.AddBody(NewBody(NewBox(1, 1), Vec{20, 0}, 100))

	near.accumulateGravity(1)
	far.accumulateGravity(1)

	ratio := near.GravityImpulse(p).Len() / far.GravityImpulse(q).Len()
	if !almostEqual(ratio, 4) {
		t.Errorf("falloff ratio = %v, want 4", ratio)
	}
}

func TestGravityMassCutoffPrunesSources(t *testing.T) {
	w := NewWorld(Params{G: 10, MassCutoff: 5, Substeps: 1})
	dustA := w.AddBody(NewBody(NewBox(1, 1), Vec{0, 0}, 1))
	dustB := w.AddBody(NewBody(NewBox(1, 1), Vec{10, 0}, 1))

	w.accumulateGravity(1)

	if imp := w.GravityImpulse(dustA); imp != (Vec{}) {
		t.Errorf("sub-cutoff body acted as source: %v", imp)
	}
	if imp := w.GravityImpulse(dustB); imp != (Vec{}) {
		t.Errorf("sub-cutoff body acted as source: %v", imp)
	}

	// A heavy body still pulls the dust, but feels nothing back from it.
	heavy := w.AddBody(NewBody(NewBox(2, 2), Vec{5, 20}, 100))
	w.accumulateGravity(1)

	if imp := w.GravityImpulse(dustA); imp == (Vec{}) {
		t.Error("dust not attracted by heavy body")
	}
	if imp := w.GravityImpulse(heavy); imp != (Vec{}) {
		t.Errorf("heavy body attracted by sub-cutoff dust: %v", imp)
	}
}

func TestGravityLightStaticBodyDoesNotEndWalk(t *testing.T) {
	// Immovable bodies sort ahead of every movable one regardless of mass.
	// A static body below the cutoff must be skipped as a source without
	// cutting off the heavy movable sources sorted behind it.
	w := newGravityWorld()
	anchor := w.AddBody(NewBody(NewBox(1, 1), Vec{0, 0}, 0.5).SetStatic())
	heavy := w.AddBody(NewBody(NewBox(2, 2), Vec{10, 0}, 100))
	dust := w.AddBody(NewBody(NewBox(1, 1), Vec{30, 0}, 0.5))

	w.accumulateGravity(1)

	if imp := w.GravityImpulse(dust); imp.X >= 0 {
		t.Errorf("dust received no pull from heavy source: %v", imp)
	}
	if imp := w.GravityImpulse(heavy); imp != (Vec{}) {
		t.Errorf("heavy body pulled by sub-cutoff bodies: %v", imp)
	}
	// The anchor still receives a formal impulse but cannot move.
	if imp := w.GravityImpulse(anchor); imp.X <= 0 {
		t.Errorf("sub-cutoff body stopped receiving: %v", imp)
	}
	if w.Bodies[anchor].Vel != (Vec{}) {
		t.Errorf("static anchor gained velocity: %v", w.Bodies[anchor].Vel)
	}
}

func TestGravityImmovableBodyIsASource(t *testing.T) {
	w := newGravityWorld()
	planet := w.AddBody(NewBody(NewCircle(10, 8), Vec{0, 50}, 5000).SetStatic())
	ship := w.AddBody(NewBody(NewBox(2, 2), Vec{0, 0}, 2))

	w.accumulateGravity(0.1)

	if w.Bodies[ship].Vel.Y <= 0 {
		t.Errorf("ship not falling toward static planet: %v", w.Bodies[ship].Vel)
	}
	// The planet accumulates a formal impulse but cannot move.
	if w.Bodies[planet].Vel != (Vec{}) {
		t.Errorf("static planet gained velocity: %v", w.Bodies[planet].Vel)
	}
}

func TestGravityCoincidentBodies(t *testing.T) {
	// Two bodies at the same point have no defined direction; the pair is
	// skipped rather than dividing by zero.
	w := newGravityWorld()
	w.AddBody(NewBody(NewBox(1, 1), Vec{3, 3}, 100))
	w.AddBody(NewBody(NewBox(1, 1), Vec{3, 3}, 100))

	w.accumulateGravity(1)

	for i, b := range w.Bodies {
		if imp := w.GravityImpulse(i); imp != (Vec{}) {
			t.Errorf("body %d got impulse from coincident pair: %v", i, imp)
		}
		if b.Vel != (Vec{}) {
			t.Errorf("body %d moved: %v", i, b.Vel)
		}
	}
}

func TestGravityImpulseBounds(t *testing.T) {
	w := newGravityWorld()
	if got := w.GravityImpulse(-1); got != (Vec{}) {
		t.Errorf("negative index: %v", got)
	}
	if got := w.GravityImpulse(5); got != (Vec{}) {
		t.Errorf("out-of-range index: %v", got)
	}
}
