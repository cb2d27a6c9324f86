package tui

import (
	"math"

	"github.com/vovakirdan/gravbox/internal/phys"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide. World space is square; screen rows cover twice the world
// height of screen columns.
const cellAspect = 2.0

// followGain is the fraction of the remaining distance the camera covers each
// tick when tracking a target.
const followGain = 0.15

// Camera maps between world coordinates and screen cells. It keeps a world
// point centered and applies the terminal aspect correction.
type Camera struct {
	Center phys.Vec
	Zoom   float64 // screen columns per world unit
}

// NewCamera creates a camera centered on the origin at 1:1 zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Snap moves the camera directly onto the target.
func (c *Camera) Snap(target phys.Vec) {
	c.Center = target
}

// Follow eases the camera toward the target. Repeated calls converge
// exponentially, which smooths out jittery tracking.
func (c *Camera) Follow(target phys.Vec) {
	c.Center = c.Center.Add(target.Sub(c.Center).Scale(followGain))
}

// WorldToScreen converts a world position to a screen cell for the given
// viewport size. Results may be out of bounds; the screen clips them.
func (c *Camera) WorldToScreen(w phys.Vec, screenW, screenH int) (int, int) {
	d := w.Sub(c.Center)
	x := int(math.Round(d.X*c.Zoom)) + screenW/2
	y := int(math.Round(d.Y*c.Zoom/cellAspect)) + screenH/2
	return x, y
}

// ScreenToWorld converts a screen cell back to world coordinates. Used to map
// mouse positions onto bodies.
func (c *Camera) ScreenToWorld(x, y, screenW, screenH int) phys.Vec {
	return phys.Vec{
		X: c.Center.X + float64(x-screenW/2)/c.Zoom,
		Y: c.Center.Y + float64(y-screenH/2)*cellAspect/c.Zoom,
	}
}
