package core

// Action represents a semantic control action, abstracted from physical key
// presses. Scenarios consume actions as a key-pressed predicate without
// knowing the actual bindings.
type Action int

const (
	ActionNone        Action = iota
	ActionThrustUp           // W, Up arrow - thrust away from "down"
	ActionThrustDown         // S, Down arrow - retro thrust
	ActionThrustLeft         // A, Left arrow
	ActionThrustRight        // D, Right arrow
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionReset              // R key - rebuild the scenario
	ActionQuit               // Q, Ctrl+C - exit session
	ActionPause              // P - pause/unpause the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionThrustDown:
		return "ThrustDown"
	case ActionThrustLeft:
		return "ThrustLeft"
	case ActionThrustRight:
		return "ThrustRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is the pointer state handed to the simulation each tick. X and Y
// are in world coordinates (the platform camera translates from screen
// cells). Engaged is true between "pointer engaged" and "pointer released".
type Pointer struct {
	X, Y    float64
	Engaged bool
}

// InputFrame represents the control state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer carries the drag interaction state for this frame.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Pointer state persists across
// frames; it changes only on pointer events.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
