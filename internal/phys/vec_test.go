package phys

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func vecAlmostEqual(a, b Vec) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVecArithmetic(t *testing.T) {
	a := Vec{3, -2}
	b := Vec{1, 4}

	if got := a.Add(b); !vecAlmostEqual(got, Vec{4, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, Vec{2, -6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(-2); !vecAlmostEqual(got, Vec{-6, 4}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); !almostEqual(got, -5) {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.Cross(b); !almostEqual(got, 14) {
		t.Errorf("Cross: got %v", got)
	}
	if got := (Vec{3, 4}).Len(); !almostEqual(got, 5) {
		t.Errorf("Len: got %v", got)
	}
	if got := a.LenSq(); !almostEqual(got, 13) {
		t.Errorf("LenSq: got %v", got)
	}
	if got := (Vec{1, 1}).Distance(Vec{4, 5}); !almostEqual(got, 5) {
		t.Errorf("Distance: got %v", got)
	}
}

func TestVecRot90PairsWithCross(t *testing.T) {
	// The quarter-turn must satisfy r.Cross(r.Rot90()) > 0 and be a pure
	// rotation, so that a positive angular velocity and the cross-product
	// torque formula agree on direction.
	vecs := []Vec{{1, 0}, {0, 1}, {3, -2}, {-1, -5}}
	for _, v := range vecs {
		r := v.Rot90()
		if got := v.Dot(r); !almostEqual(got, 0) {
			t.Errorf("Rot90(%v) not perpendicular: dot=%v", v, got)
		}
		if got := v.Cross(r); got <= 0 {
			t.Errorf("Rot90(%v) turns the wrong way: cross=%v", v, got)
		}
		if !almostEqual(r.Len(), v.Len()) {
			t.Errorf("Rot90(%v) changed length: %v -> %v", v, v.Len(), r.Len())
		}
	}
}

func TestVecNormalize(t *testing.T) {
	if got := (Vec{3, 4}).Normalize(); !vecAlmostEqual(got, Vec{0.6, 0.8}) {
		t.Errorf("Normalize: got %v", got)
	}
	// The zero vector has no direction; the documented fallback is +x.
	if got := (Vec{}).Normalize(); !vecAlmostEqual(got, Vec{1, 0}) {
		t.Errorf("Normalize zero: got %v", got)
	}
}

func TestRotationApply(t *testing.T) {
	// A quarter turn under y-down coordinates maps +x onto +y.
	rot := Rotation(math.Pi / 2)
	if got := rot.Apply(Vec{1, 0}); !vecAlmostEqual(got, Vec{0, 1}) {
		t.Errorf("quarter turn of +x: got %v", got)
	}
	if got := rot.Apply(Vec{0, 1}); !vecAlmostEqual(got, Vec{-1, 0}) {
		t.Errorf("quarter turn of +y: got %v", got)
	}

	// Rotation by an angle then its negation round-trips.
	v := Vec{2.5, -1.25}
	back := Rotation(-0.7).Apply(Rotation(0.7).Apply(v))
	if !vecAlmostEqual(back, v) {
		t.Errorf("rotation round-trip: got %v, want %v", back, v)
	}

	// Rotation agrees with Rot90 at a quarter turn.
	if got := rot.Apply(Vec{3, -2}); !vecAlmostEqual(got, Vec{3, -2}.Rot90()) {
		t.Errorf("Rotation(pi/2) disagrees with Rot90: got %v", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 1.5, 1.5},
		{"full turn", 2 * math.Pi, 0},
		{"negative", -math.Pi / 2, 3 * math.Pi / 2},
		{"multiple turns", 5 * math.Pi, math.Pi},
		{"large negative", -7 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if !almostEqual(got, c.want) {
			t.Errorf("%s: NormalizeAngle(%v) = %v, want %v", c.name, c.in, got, c.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("%s: result %v outside [0, 2pi)", c.name, got)
		}
	}
}
