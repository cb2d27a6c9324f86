// Package phys implements the 2D rigid-body physics engine behind the
// sandbox: vector/matrix math, convex meshes, impulse-based collision
// resolution, N-body gravity, and welded-group constraints. It contains no
// platform dependencies; all state lives in a World owned by the tick driver.
//
// Coordinates follow the screen convention: x grows right, y grows down, and
// mesh vertices are wound clockwise as seen on screen. Cross, Rot90 and the
// angular formulas all share that convention; mixing in y-up math will flip
// every normal and torque sign.
package phys

import (
	"fmt"
	"math"
)

// Vec is an immutable 2D vector. All operations return new values.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product of v and o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Rot90 returns v rotated a quarter turn, in the direction that pairs with
// Cross: for any r, a positive angular velocity w moves the point r with
// velocity r.Rot90().Scale(w), and an impulse j at r changes angular velocity
// by invInertia * r.Cross(j).
func (v Vec) Rot90() Vec {
	return Vec{-v.Y, v.X}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// String formats the vector for logs and status lines.
func (v Vec) String() string {
	return fmt.Sprintf("(%.6g, %.6g)", v.X, v.Y)
}

// Normalize returns the unit vector in v's direction. A zero-length vector
// normalizes to (1, 0); callers must tolerate that arbitrary fallback
// direction.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{1, 0}
	}
	return Vec{v.X / l, v.Y / l}
}

// Mat is an immutable 2x2 linear map stored as its two basis columns.
// Applying it maps (x, y) to colX*x + colY*y.
type Mat struct {
	ColX, ColY Vec
}

// Rotation builds the rotation matrix for the given angle from its rotation
// basis vectors.
func Rotation(angle float64) Mat {
	sin, cos := math.Sincos(angle)
	return Mat{
		ColX: Vec{cos, sin},
		ColY: Vec{-sin, cos},
	}
}

// Apply maps v through the matrix.
func (m Mat) Apply(v Vec) Vec {
	return m.ColX.Scale(v.X).Add(m.ColY.Scale(v.Y))
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
