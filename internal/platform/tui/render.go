package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// edgeRune picks the outline character for an entity kind.
func edgeRune(k scenario.Kind) rune {
	switch k {
	case scenario.KindPlanet:
		return '*'
	case scenario.KindShip:
		return '█'
	default:
		return '#'
	}
}

// DrawScene rasterizes every entity's collision mesh onto the screen through
// the camera. Polygon edges are traced with Bresenham lines; bodies that
// collapse to a single cell still get one marker so small debris stays
// visible.
func DrawScene(s *core.Screen, cam *Camera, entities []*scenario.Entity) {
	w, h := s.Width(), s.Height()

	for _, e := range entities {
		mesh := e.Body.WorldMesh()
		if len(mesh.Verts) == 0 {
			continue
		}
		r := edgeRune(e.Kind)

		prevX, prevY := cam.WorldToScreen(mesh.Verts[len(mesh.Verts)-1], w, h)
		drewAny := false
		for _, v := range mesh.Verts {
			x, y := cam.WorldToScreen(v, w, h)
			if x != prevX || y != prevY {
				s.DrawLine(prevX, prevY, x, y, r, e.Color)
				drewAny = true
			}
			prevX, prevY = x, y
		}
		if !drewAny {
			s.SetColored(prevX, prevY, r, e.Color)
		}
	}
}

// gravityArrows covers the eight compass directions, screen-oriented
// (y grows downward). Index 0 is east, going clockwise.
var gravityArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// GravityGlyph returns an arrow pointing along the given world-space
// direction, or a dot when the pull is negligible.
func GravityGlyph(dir phys.Vec) rune {
	if dir.LenSq() < 1e-12 {
		return '·'
	}
	angle := math.Atan2(dir.Y, dir.X)
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return gravityArrows[sector]
}
