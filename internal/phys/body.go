package phys

// Body is a rigid body simulated by the engine. Mass is the finite source
// mass used by the gravity accumulator; InvMass and InvInertia are the
// inverses used everywhere else. Both inverses zero denotes an immovable
// body: it never gains velocity from impulses but still attracts (and is
// formally attracted by) everything else.
type Body struct {
	Mesh  Mesh
	Pos   Vec
	Angle float64

	Vel    Vec
	AngVel float64

	Mass       float64
	InvMass    float64
	InvInertia float64

	Restitution     float64
	StaticFriction  float64
	DynamicFriction float64
}

// Default surface coefficients for new bodies.
const (
	defaultRestitution     = 0.5
	defaultStaticFriction  = 0.6
	defaultDynamicFriction = 0.4
)

// NewBody creates a movable body with the given mesh, position and mass.
// Rotational inertia is derived from the mesh geometry.
func NewBody(mesh Mesh, pos Vec, mass float64) *Body {
	b := &Body{
		Mesh:            mesh,
		Pos:             pos,
		Mass:            mass,
		Restitution:     defaultRestitution,
		StaticFriction:  defaultStaticFriction,
		DynamicFriction: defaultDynamicFriction,
	}
	if mass > 0 {
		b.InvMass = 1 / mass
		if inertia := mesh.Inertia(mass); inertia > 0 {
			b.InvInertia = 1 / inertia
		}
	}
	return b
}

// SetStatic marks the body immovable by zeroing both inverses. Mass is kept
// as-is so the body still acts as a gravity source.
func (b *Body) SetStatic() *Body {
	b.InvMass = 0
	b.InvInertia = 0
	return b
}

// Movable reports whether impulses can change the body's motion.
func (b *Body) Movable() bool {
	return b.InvMass != 0 && b.InvInertia != 0
}

// Integrate advances position and orientation by one explicit-Euler step.
// The angle is kept normalized into [0, 2π).
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Angle = NormalizeAngle(b.Angle + b.AngVel*dt)
}

// ApplyImpulse applies an instantaneous momentum change at a world-space
// contact point. This is the sole mutator of velocity and angular velocity
// outside integration; gravity, collisions and pointer dragging all act
// through it. Immovable bodies are unaffected because both inverses are zero.
func (b *Body) ApplyImpulse(imp, at Vec) {
	b.Vel = b.Vel.Add(imp.Scale(b.InvMass))
	b.AngVel += b.InvInertia * at.Sub(b.Pos).Cross(imp)
}

// VelocityAt returns the instantaneous linear velocity of the material point
// at the given world position on this rotating, translating body.
func (b *Body) VelocityAt(p Vec) Vec {
	return b.Vel.Add(p.Sub(b.Pos).Rot90().Scale(b.AngVel))
}

// WorldToLocal maps a world-space point into the body's local frame.
func (b *Body) WorldToLocal(p Vec) Vec {
	return Rotation(-b.Angle).Apply(p.Sub(b.Pos))
}

// LocalToWorld maps a local-space point into world space.
func (b *Body) LocalToWorld(p Vec) Vec {
	return Rotation(b.Angle).Apply(p).Add(b.Pos)
}

// WorldMesh returns the body's mesh transformed into world space.
func (b *Body) WorldMesh() Mesh {
	return b.Mesh.Transform(b.Pos, b.Angle)
}
