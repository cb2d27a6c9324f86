package scenario

import (
	"fmt"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
)

const (
	// dragGain is the fraction of the pointer-to-grab-point gap converted
	// into point velocity per tick while dragging.
	dragGain = 8.0

	// dragImpulseScale softens the velocity-matching impulse so a drag
	// cannot inject unbounded energy in one tick.
	dragImpulseScale = 0.3

	// thrustAccel is the acceleration applied to the controlled entity
	// while a thrust action is held, in world units per second squared.
	thrustAccel = 30.0
)

// grab tracks an active pointer drag: the grabbed entity and the material
// point held, in body-local coordinates so it stays attached under rotation.
type grab struct {
	ent   *Entity
	local phys.Vec
}

// Sim is the shared simulation harness embedded by every scenario. It owns
// the world, the entity list and the tick loop plumbing: pause, reset
// signalling, pointer dragging and thrust for the controlled entity.
// Scenarios populate it in Reset and layer their own status on top.
type Sim struct {
	Cfg core.RuntimeConfig

	world      *phys.World
	entities   []*Entity
	controlled *Entity

	tick   int
	paused bool
	dt     float64

	grab *grab
}

// Rebuild replaces the world and entity list, resetting tick and interaction
// state. Scenarios call it from Reset.
func (s *Sim) Rebuild(cfg core.RuntimeConfig, w *phys.World, entities []*Entity) {
	s.Cfg = cfg
	s.world = w
	s.entities = entities
	s.controlled = nil
	for _, e := range entities {
		if e.Kind == KindShip && s.controlled == nil {
			s.controlled = e
		}
	}
	s.tick = 0
	s.paused = false
	s.grab = nil
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	s.dt = 1 / float64(rate)
}

// World returns the physics world.
func (s *Sim) World() *phys.World { return s.world }

// Entities returns the renderable entities in spawn order.
func (s *Sim) Entities() []*Entity { return s.entities }

// Controlled returns the entity receiving thrust, or nil.
func (s *Sim) Controlled() *Entity { return s.controlled }

// Tick returns the number of ticks simulated since the last rebuild.
func (s *Sim) Tick() int { return s.tick }

// Paused reports whether the simulation is paused.
func (s *Sim) Paused() bool { return s.paused }

// State returns the common part of the scenario state.
func (s *Sim) State() core.SimState {
	return core.SimState{
		Tick:   s.tick,
		Bodies: len(s.world.Bodies),
		Paused: s.paused,
	}
}

// Advance runs one tick: pause handling, thrust, pointer drag, then the
// physics step. It returns false without stepping when paused.
func (s *Sim) Advance(in core.InputFrame) bool {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return false
	}

	s.applyThrust(in)
	s.applyPointer(in.Pointer)

	s.world.Step(s.dt)
	s.tick++
	return true
}

func (s *Sim) applyThrust(in core.InputFrame) {
	if s.controlled == nil {
		return
	}
	b := s.controlled.Body

	var dir phys.Vec
	if in.Has(core.ActionThrustUp) {
		dir.Y -= 1
	}
	if in.Has(core.ActionThrustDown) {
		dir.Y += 1
	}
	if in.Has(core.ActionThrustLeft) {
		dir.X -= 1
	}
	if in.Has(core.ActionThrustRight) {
		dir.X += 1
	}
	if dir == (phys.Vec{}) {
		return
	}
	imp := dir.Normalize().Scale(thrustAccel * s.dt * b.Mass)
	b.ApplyImpulse(imp, b.Pos)
}

// applyPointer implements dragging: an engaged pointer grabs the topmost
// movable entity under it and thereafter pulls the grabbed material point
// toward the pointer with a velocity-matching impulse.
func (s *Sim) applyPointer(p core.Pointer) {
	if !p.Engaged {
		s.grab = nil
		return
	}
	at := phys.Vec{X: p.X, Y: p.Y}

	if s.grab == nil {
		// Later entities draw on top, so scan back to front.
		for i := len(s.entities) - 1; i >= 0; i-- {
			e := s.entities[i]
			if !e.Body.Movable() {
				continue
			}
			if e.Body.WorldMesh().Contains(at) {
				s.grab = &grab{ent: e, local: e.Body.WorldToLocal(at)}
				break
			}
		}
		if s.grab == nil {
			return
		}
	}

	b := s.grab.ent.Body
	point := b.LocalToWorld(s.grab.local)
	want := at.Sub(point).Scale(dragGain)
	have := b.VelocityAt(point)
	imp := want.Sub(have).Scale(b.Mass * dragImpulseScale)
	b.ApplyImpulse(imp, point)
}

// Dragging returns the entity currently held by the pointer, or nil.
func (s *Sim) Dragging() *Entity {
	if s.grab == nil {
		return nil
	}
	return s.grab.ent
}

// StatusSpeed formats the controlled entity's speed for HUD status lines.
func (s *Sim) StatusSpeed() string {
	if s.controlled == nil {
		return ""
	}
	return fmt.Sprintf("v=%.1f", s.controlled.Body.Vel.Len())
}
