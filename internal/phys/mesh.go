package phys

import "math"

// Mesh is a convex polygon in local body space. Vertices are wound clockwise
// under the y-down screen convention; every cross-product based normal and
// inside test in the engine relies on that winding. Bound is the precomputed
// maximum vertex distance from the local origin, used for cheap pair
// rejection before the exact separating-axis test.
type Mesh struct {
	Verts []Vec
	Bound float64
}

// NewMesh builds a mesh from an explicit clockwise vertex list and
// precomputes its bounding radius.
func NewMesh(verts []Vec) Mesh {
	bound := 0.0
	for _, v := range verts {
		if l := v.Len(); l > bound {
			bound = l
		}
	}
	return Mesh{Verts: verts, Bound: bound}
}

// NewBox builds an axis-aligned box mesh centered on the local origin.
func NewBox(w, h float64) Mesh {
	hw, hh := w/2, h/2
	return NewMesh([]Vec{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	})
}

// NewCircle builds a disc approximation with the given number of equally
// spaced vertices. Under y-down coordinates an increasing angle walks the
// vertices clockwise on screen.
func NewCircle(r float64, segments int) Mesh {
	if segments < 3 {
		segments = 3
	}
	verts := make([]Vec, segments)
	for i := range verts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sincos(a)
		verts[i] = Vec{r * cos, r * sin}
	}
	return NewMesh(verts)
}

// Transform returns a new mesh with every vertex rotated by angle and
// translated to pos. The bounding radius is rotation-invariant and carried
// over unchanged.
func (m Mesh) Transform(pos Vec, angle float64) Mesh {
	rot := Rotation(angle)
	verts := make([]Vec, len(m.Verts))
	for i, v := range m.Verts {
		verts[i] = rot.Apply(v).Add(pos)
	}
	return Mesh{Verts: verts, Bound: m.Bound}
}

// Contains reports whether p lies inside the convex polygon. With clockwise
// winding, p is inside iff it sits on the non-negative cross side of every
// edge.
func (m Mesh) Contains(p Vec) bool {
	n := len(m.Verts)
	for i := 0; i < n; i++ {
		v1 := m.Verts[i]
		v2 := m.Verts[(i+1)%n]
		if v2.Sub(v1).Cross(p.Sub(v1)) < 0 {
			return false
		}
	}
	return true
}

// Inertia returns the moment of inertia of the polygon about the local
// origin for the given mass, via the standard polygon second-moment formula.
// Winding direction cancels out of the ratio.
func (m Mesh) Inertia(mass float64) float64 {
	var num, den float64
	n := len(m.Verts)
	for i := 0; i < n; i++ {
		v1 := m.Verts[i]
		v2 := m.Verts[(i+1)%n]
		c := v1.Cross(v2)
		num += c * (v1.Dot(v1) + v1.Dot(v2) + v2.Dot(v2))
		den += c
	}
	if den == 0 {
		return 0
	}
	return mass * num / (6 * den)
}
