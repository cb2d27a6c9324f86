// Package scenes contains the built-in sandbox scenarios. Importing it for
// side effects registers them all.
package scenes

import (
	"math"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
)

// newWorld builds a physics world from file-level tuning, falling back to
// engine defaults for unset fields.
func newWorld(p config.PhysicsConfig) *phys.World {
	return phys.NewWorld(phys.Params{
		G:          p.G,
		MassCutoff: p.MassCutoff,
		Substeps:   p.Substeps,
	})
}

// segments returns the configured circle tessellation.
func segments(p config.PhysicsConfig) int {
	if p.CircleSegments > 0 {
		return p.CircleSegments
	}
	return config.DefaultPhysicsConfig().CircleSegments
}

// colorByName maps the color names accepted in scene files to screen colors.
func colorByName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	case "gray":
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// orbitSpeed returns the circular orbit speed around a central mass at the
// given radius.
func orbitSpeed(g, centralMass, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Sqrt(g * centralMass / radius)
}
