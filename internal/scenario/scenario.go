// Package scenario defines the scenario interface and a global registry for
// scenario factories. Scenarios register themselves in init() functions,
// allowing the platform to discover and instantiate them without hardcoded
// dependencies.
package scenario

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
)

// Scenario is the core interface every sandbox scene implements. Scenarios
// contain pure simulation logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and rendering.
type Scenario interface {
	// ID returns a unique identifier (e.g. "orbits", "lander"). Used for
	// CLI commands and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds or rebuilds the world. Called once at start and again
	// when the user restarts the scene.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// State returns the current simulation state.
	State() core.SimState

	// World exposes the physics world for rendering and inspection.
	World() *phys.World

	// Entities returns the renderable bodies with their display metadata,
	// in stable order.
	Entities() []*Entity
}

// Kind classifies an entity for rendering and interaction.
type Kind int

const (
	KindPlanet Kind = iota // heavy attractor, usually static
	KindCrate              // inert debris, draggable
	KindShip               // player-controlled, receives thrust
)

// Entity pairs a physics body with its display metadata.
type Entity struct {
	Name  string
	Kind  Kind
	Color core.Color
	Body  *phys.Body
}

// Info contains metadata about a registered scenario.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scenario.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry. Typically called from a
// scenario's init() function. Panics if the ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scenario by its ID.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("scenario: unknown scenario %q", id)
	}

	return f(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
