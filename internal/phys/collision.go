package phys

import "math"

// Collision is the transient result of a pairwise test. Normal is a unit
// vector pointing from A toward B's side: resolution pushes A backward along
// -Normal and B forward along +Normal. Face is the contributing reference
// edge, kept for diagnostics only. A body pair yields at most one Collision
// per test; deep multi-point penetration is approximated by its deepest
// contact.
type Collision struct {
	A, B   *Body
	Point  Vec
	Normal Vec
	Depth  float64
	Face   [2]Vec
}

// satResult is the best separating-axis candidate for one ordering.
type satResult struct {
	depth  float64
	normal Vec
	point  Vec
	face   [2]Vec
}

// outward returns the unit outward normal of a clockwise-wound edge.
func outward(edge Vec) Vec {
	return Vec{edge.Y, -edge.X}.Normalize()
}

// satQuery walks the reference mesh's edges and finds the axis of minimum
// penetration against the incident mesh. It returns false as soon as any
// edge proves a separating axis.
func satQuery(ref, inc Mesh) (satResult, bool) {
	best := satResult{depth: math.Inf(1)}

	n := len(ref.Verts)
	for i := 0; i < n; i++ {
		v1 := ref.Verts[i]
		v2 := ref.Verts[(i+1)%n]
		axis := outward(v2.Sub(v1))

		// Support point of the incident mesh along the inward normal:
		// the vertex reaching deepest past this edge.
		support := inc.Verts[0]
		min := support.Dot(axis)
		for _, v := range inc.Verts[1:] {
			if d := v.Dot(axis); d < min {
				min = d
				support = v
			}
		}

		depth := v1.Dot(axis) - min
		if depth < 0 {
			return satResult{}, false
		}
		if depth < best.depth {
			best = satResult{
				depth:  depth,
				normal: axis,
				point:  support,
				face:   [2]Vec{v1, v2},
			}
		}
	}
	return best, true
}

// Detect runs the separating-axis test between two bodies. The pair is first
// rejected cheaply when the bounding circles cannot overlap. Both orderings
// are tried; the one with the smaller minimum penetration determines the
// reported roles and normal direction.
func Detect(a, b *Body) (Collision, bool) {
	if a.Pos.Distance(b.Pos) > a.Mesh.Bound+b.Mesh.Bound {
		return Collision{}, false
	}

	ma := a.WorldMesh()
	mb := b.WorldMesh()

	ab, ok := satQuery(ma, mb)
	if !ok {
		return Collision{}, false
	}
	ba, ok := satQuery(mb, ma)
	if !ok {
		return Collision{}, false
	}

	if ab.depth <= ba.depth {
		return Collision{A: a, B: b, Point: ab.point, Normal: ab.normal, Depth: ab.depth, Face: ab.face}, true
	}
	return Collision{A: b, B: a, Point: ba.point, Normal: ba.normal, Depth: ba.depth, Face: ba.face}, true
}
