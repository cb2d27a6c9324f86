package phys

import "math"

const (
	// slop is the penetration tolerance left uncorrected to avoid jitter
	// from always-on correction.
	slop = 0.05

	// correctionPercent is the fraction of remaining penetration removed
	// per Correct call. Kept below 1 so correction converges without
	// injecting energy.
	correctionPercent = 0.4
)

// Resolve applies the impulse response for this contact: a normal impulse
// with combined restitution, then a Coulomb friction impulse along the
// tangent. Bodies already separating along the normal are left untouched so
// a contact is never resolved twice.
func (c *Collision) Resolve() {
	a, b := c.A, c.B

	rel := b.VelocityAt(c.Point).Sub(a.VelocityAt(c.Point))
	vn := rel.Dot(c.Normal)
	if vn >= 0 {
		return
	}

	ra := c.Point.Sub(a.Pos)
	rb := c.Point.Sub(b.Pos)

	raXn := ra.Cross(c.Normal)
	rbXn := rb.Cross(c.Normal)
	kn := a.InvMass + b.InvMass + raXn*raXn*a.InvInertia + rbXn*rbXn*b.InvInertia
	if kn == 0 {
		return
	}

	e := a.Restitution * b.Restitution
	j := -(1 + e) * vn / kn

	imp := c.Normal.Scale(j)
	a.ApplyImpulse(imp.Scale(-1), c.Point)
	b.ApplyImpulse(imp, c.Point)

	// Friction works on the post-impulse relative velocity.
	rel = b.VelocityAt(c.Point).Sub(a.VelocityAt(c.Point))
	slide := rel.Sub(c.Normal.Scale(rel.Dot(c.Normal)))
	if slide.LenSq() == 0 {
		return
	}
	tangent := slide.Normalize()

	raXt := ra.Cross(tangent)
	rbXt := rb.Cross(tangent)
	kt := a.InvMass + b.InvMass + raXt*raXt*a.InvInertia + rbXt*rbXt*b.InvInertia
	if kt == 0 {
		return
	}

	// Unconstrained impulse that would cancel all tangential motion.
	jt := -rel.Dot(tangent) / kt

	var fImp Vec
	if math.Abs(jt) < j*a.StaticFriction*b.StaticFriction {
		fImp = tangent.Scale(jt) // sticking
	} else {
		fImp = tangent.Scale(-j * a.DynamicFriction * b.DynamicFriction) // sliding
	}

	a.ApplyImpulse(fImp.Scale(-1), c.Point)
	b.ApplyImpulse(fImp, c.Point)
}

// Correct nudges the two bodies apart to remove residual penetration beyond
// the slop tolerance, distributing the shift in proportion to inverse mass.
// Only a fixed fraction is removed per call; velocity is untouched.
func (c *Collision) Correct() {
	a, b := c.A, c.B

	if c.Depth <= slop {
		return
	}
	invSum := a.InvMass + b.InvMass
	if invSum == 0 {
		return
	}

	correction := c.Normal.Scale((c.Depth - slop) / invSum * correctionPercent)
	a.Pos = a.Pos.Sub(correction.Scale(a.InvMass))
	b.Pos = b.Pos.Add(correction.Scale(b.InvMass))
}
