package phys

import (
	"errors"
	"math"
)

// weldBlend is the fraction of positional drift removed per update. Partial
// correction keeps the constraint soft: numerical drift between members is
// damped continuously instead of snapped away in one step.
const weldBlend = 0.5

// errImmovableMember is returned when a weld is attempted over a body whose
// inverse mass or inertia is zero.
var errImmovableMember = errors.New("phys: cannot weld an immovable body")

type weldMember struct {
	body        *Body
	offset      Vec     // nominal offset from the group centroid
	dist        float64 // cached length of offset
	angleOffset float64 // nominal angle relative to the group orientation
}

// WeldGroup constrains a fixed set of movable bodies to move as one
// composite rigid body while each member keeps its own simulated state. The
// group only reads and overwrites member kinematics once per tick; it owns
// nothing.
type WeldGroup struct {
	members     []weldMember
	mass        float64 // combined mass
	inertia     float64 // combined inertia about the centroid (parallel axis)
	orientation float64
}

// NewWeldGroup builds a group over the given bodies. Offsets are recomputed
// relative to the mass-weighted centroid, and the combined mass and inertia
// are derived once for the group's lifetime. Welding an immovable body is a
// configuration error.
func NewWeldGroup(bodies ...*Body) (*WeldGroup, error) {
	if len(bodies) < 2 {
		return nil, errors.New("phys: weld group needs at least two bodies")
	}
	for _, b := range bodies {
		if !b.Movable() {
			return nil, errImmovableMember
		}
	}

	var mass float64
	var centroid Vec
	for _, b := range bodies {
		mass += b.Mass
		centroid = centroid.Add(b.Pos.Scale(b.Mass))
	}
	centroid = centroid.Scale(1 / mass)

	g := &WeldGroup{mass: mass}
	for _, b := range bodies {
		offset := b.Pos.Sub(centroid)
		g.members = append(g.members, weldMember{
			body:        b,
			offset:      offset,
			dist:        offset.Len(),
			angleOffset: b.Angle,
		})
		g.inertia += 1/b.InvInertia + b.Mass*offset.LenSq()
	}
	return g, nil
}

// Update reconciles member kinematics with a single rigid-body motion. It
// derives the assembly's velocity and angular velocity from the members' net
// momenta, imposes that velocity field on every member, then blends member
// positions and angles toward their nominal layout around the current
// assembly orientation.
func (g *WeldGroup) Update() {
	var centroid Vec
	for _, m := range g.members {
		centroid = centroid.Add(m.body.Pos.Scale(m.body.Mass))
	}
	centroid = centroid.Scale(1 / g.mass)

	var momentum Vec
	var angular float64
	for _, m := range g.members {
		b := m.body
		momentum = momentum.Add(b.Vel.Scale(b.Mass))

		angular += b.AngVel / b.InvInertia

		r := b.Pos.Sub(centroid)
		dist := r.Len()
		if dist > 0 {
			// A member drifted beyond its nominal distance would
			// otherwise contribute inflated angular momentum; scale
			// the lever arm back to nominal.
			angular += b.Mass * (m.dist / dist) * r.Cross(b.Vel)
		}
	}

	vel := momentum.Scale(1 / g.mass)
	angVel := angular / g.inertia

	for _, m := range g.members {
		b := m.body
		r := b.Pos.Sub(centroid)
		b.Vel = vel.Add(r.Rot90().Scale(angVel))
		b.AngVel = angVel
	}

	// Assembly orientation: the mass-weighted average rotation aligning
	// each member's actual offset with its nominal one. Angles are averaged
	// as unit vectors to stay safe across the wrap-around.
	var acc Vec
	for _, m := range g.members {
		if m.dist == 0 {
			continue
		}
		r := m.body.Pos.Sub(centroid)
		if r.LenSq() == 0 {
			continue
		}
		a := math.Atan2(m.offset.Cross(r), m.offset.Dot(r))
		sin, cos := math.Sincos(a)
		acc = acc.Add(Vec{cos, sin}.Scale(m.body.Mass))
	}
	if acc.LenSq() > 0 {
		g.orientation = math.Atan2(acc.Y, acc.X)
	}

	rot := Rotation(g.orientation)
	for _, m := range g.members {
		b := m.body
		target := centroid.Add(rot.Apply(m.offset))
		b.Pos = b.Pos.Add(target.Sub(b.Pos).Scale(weldBlend))
		b.Angle = NormalizeAngle(g.orientation + m.angleOffset)
	}
}

// Bodies returns the member bodies in registration order.
func (g *WeldGroup) Bodies() []*Body {
	out := make([]*Body, len(g.members))
	for i, m := range g.members {
		out[i] = m.body
	}
	return out
}
