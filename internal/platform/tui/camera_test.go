package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/gravbox/internal/phys"
)

func TestCameraCenterMapsToScreenCenter(t *testing.T) {
	cam := NewCamera()
	cam.Center = phys.Vec{X: 10, Y: -5}

	x, y := cam.WorldToScreen(cam.Center, 80, 24)
	if x != 40 || y != 12 {
		t.Errorf("camera center mapped to (%d, %d), want (40, 12)", x, y)
	}
}

func TestCameraAspectCorrection(t *testing.T) {
	cam := NewCamera()

	// One world unit right moves one column; one world unit down moves only
	// half a row because cells are twice as tall as wide.
	x, _ := cam.WorldToScreen(phys.Vec{X: 4}, 80, 24)
	if x != 44 {
		t.Errorf("x offset = %d, want 44", x)
	}
	_, y := cam.WorldToScreen(phys.Vec{Y: 4}, 80, 24)
	if y != 14 {
		t.Errorf("y offset = %d, want 14", y)
	}
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera()
	cam.Center = phys.Vec{X: 3, Y: 7}
	cam.Zoom = 0.5

	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 5}} {
		w := cam.ScreenToWorld(cell[0], cell[1], 80, 24)
		x, y := cam.WorldToScreen(w, 80, 24)
		if x != cell[0] || y != cell[1] {
			t.Errorf("cell (%d, %d) round-tripped to (%d, %d)", cell[0], cell[1], x, y)
		}
	}
}

func TestCameraFollowConverges(t *testing.T) {
	cam := NewCamera()
	target := phys.Vec{X: 100, Y: -40}

	first := cam.Center
	for i := 0; i < 200; i++ {
		cam.Follow(target)
	}
	if cam.Center == first {
		t.Fatal("Follow() did not move the camera")
	}
	if d := cam.Center.Sub(target).Len(); d > 1e-6 {
		t.Errorf("camera did not converge on target: distance %v", d)
	}
}

func TestCameraSnap(t *testing.T) {
	cam := NewCamera()
	cam.Snap(phys.Vec{X: -2, Y: 9})
	if cam.Center != (phys.Vec{X: -2, Y: 9}) {
		t.Errorf("Snap() left camera at %v", cam.Center)
	}
}

func TestGravityGlyphDirections(t *testing.T) {
	tests := []struct {
		dir  phys.Vec
		want rune
	}{
		{phys.Vec{X: 1}, '→'},
		{phys.Vec{X: -1}, '←'},
		{phys.Vec{Y: 1}, '↓'}, // y grows downward on screen
		{phys.Vec{Y: -1}, '↑'},
		{phys.Vec{X: 1, Y: 1}, '↘'},
		{phys.Vec{X: -1, Y: -1}, '↖'},
		{phys.Vec{}, '·'},
	}
	for _, tt := range tests {
		if got := GravityGlyph(tt.dir); got != tt.want {
			t.Errorf("GravityGlyph(%v) = %c, want %c", tt.dir, got, tt.want)
		}
	}
}

func TestGravityGlyphSectorBoundaries(t *testing.T) {
	// Just inside the east sector on both sides of the axis.
	eps := math.Pi / 16
	for _, angle := range []float64{-eps, eps} {
		dir := phys.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
		if got := GravityGlyph(dir); got != '→' {
			t.Errorf("GravityGlyph(angle %.3f) = %c, want →", angle, got)
		}
	}
}
