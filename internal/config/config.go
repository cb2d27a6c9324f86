// Package config provides YAML-based configuration for physics tuning and
// user-defined sandbox scenes.
package config

import "fmt"

// PhysicsConfig tunes the simulation world. Zero values fall back to the
// engine defaults.
type PhysicsConfig struct {
	G              float64 `yaml:"g"`
	MassCutoff     float64 `yaml:"mass_cutoff"`
	Substeps       int     `yaml:"substeps"`
	CircleSegments int     `yaml:"circle_segments"`
}

// BodyConfig describes one body of a user-defined scene.
type BodyConfig struct {
	Kind   string  `yaml:"kind"` // "box" or "circle"
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`  // box only
	Height float64 `yaml:"height"` // box only
	Radius float64 `yaml:"radius"` // circle only
	Mass   float64 `yaml:"mass"`
	VelX   float64 `yaml:"vel_x"`
	VelY   float64 `yaml:"vel_y"`
	Static bool    `yaml:"static"`
	Color  string  `yaml:"color"` // ANSI color name, optional

	Restitution float64 `yaml:"restitution"` // 0 keeps the engine default
}

// WeldConfig rigidly joins bodies of a scene by their zero-based indices in
// the bodies list.
type WeldConfig struct {
	Bodies []int `yaml:"bodies"`
}

// PlaygroundConfig is a full user-defined scene: physics tuning plus the
// bodies and welds to spawn.
type PlaygroundConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Bodies  []BodyConfig  `yaml:"bodies"`
	Welds   []WeldConfig  `yaml:"welds"`
}

// Validate rejects scenes that cannot be spawned: unknown body kinds,
// non-positive dimensions and weld indices outside the bodies list.
func (c PlaygroundConfig) Validate() error {
	for i, b := range c.Bodies {
		switch b.Kind {
		case "box":
			if b.Width <= 0 || b.Height <= 0 {
				return fmt.Errorf("body %d: box needs positive width and height", i)
			}
		case "circle":
			if b.Radius <= 0 {
				return fmt.Errorf("body %d: circle needs a positive radius", i)
			}
		default:
			return fmt.Errorf("body %d: unknown kind %q", i, b.Kind)
		}
		if b.Mass <= 0 {
			return fmt.Errorf("body %d: mass must be positive", i)
		}
	}
	for i, w := range c.Welds {
		if len(w.Bodies) < 2 {
			return fmt.Errorf("weld %d: needs at least two bodies", i)
		}
		for _, idx := range w.Bodies {
			if idx < 0 || idx >= len(c.Bodies) {
				return fmt.Errorf("weld %d: body index %d out of range", i, idx)
			}
			if c.Bodies[idx].Static {
				return fmt.Errorf("weld %d: body %d is static and cannot be welded", i, idx)
			}
		}
	}
	return nil
}
