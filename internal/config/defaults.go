package config

import (
	_ "embed"
)

//go:embed defaults/playground.yaml
var defaultPlaygroundYAML []byte

// DefaultPhysicsConfig returns the engine tuning used when no file overrides
// it.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		G:              40,
		MassCutoff:     1,
		Substeps:       4,
		CircleSegments: 12,
	}
}

// DefaultPlaygroundConfig returns the built-in scene as a last-resort
// fallback when even the embedded YAML fails to parse.
func DefaultPlaygroundConfig() PlaygroundConfig {
	return PlaygroundConfig{
		Physics: DefaultPhysicsConfig(),
		Bodies: []BodyConfig{
			{Kind: "circle", X: 0, Y: 30, Radius: 8, Mass: 4000, Static: true, Color: "yellow"},
			{Kind: "box", X: -14, Y: -6, Width: 3, Height: 3, Mass: 2, VelX: 10, Color: "cyan"},
			{Kind: "box", X: 14, Y: -8, Width: 3, Height: 3, Mass: 2, VelX: -10, Color: "cyan"},
		},
	}
}
