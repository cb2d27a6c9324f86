package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
	"github.com/vovakirdan/gravbox/internal/scenario"
	"github.com/vovakirdan/gravbox/internal/storage"
)

// zoomStep is the multiplicative zoom change per +/- keypress.
const zoomStep = 1.25

// Model is the Bubble Tea model for running a sandbox scenario.
type Model struct {
	scen       scenario.Scenario
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	cam        *Camera
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	simState   core.SimState

	startedAt     time.Time
	startMomentum phys.Vec
	quitting      bool
	backing       bool // Return to menu instead of exiting
	runSaved      bool
}

// NewModel creates a new Bubble Tea model for the given scenario.
func NewModel(scen scenario.Scenario, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	cam := NewCamera()
	cam.Zoom = 0.6

	return Model{
		scen:       scen,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		cam:        cam,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.scen.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "+", "=":
		m.cam.Zoom = core.ClampF(m.cam.Zoom*zoomStep, 0.1, 4)
		return m, nil
	case "-", "_":
		m.cam.Zoom = core.ClampF(m.cam.Zoom/zoomStep, 0.1, 4)
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	if action == core.ActionBack {
		m.backing = true
		m.saveRun()
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse maps mouse events onto the pointer: left press engages it at
// the world position under the cursor, motion moves it, release lets go.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		at := m.cam.ScreenToWorld(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
		m.inputFrame.Pointer = core.Pointer{X: at.X, Y: at.Y, Engaged: true}

	case tea.MouseActionMotion:
		if !m.inputFrame.Pointer.Engaged {
			return m, nil
		}
		at := m.cam.ScreenToWorld(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
		m.inputFrame.Pointer.X = at.X
		m.inputFrame.Pointer.Y = at.Y

	case tea.MouseActionRelease:
		m.inputFrame.Pointer.Engaged = false
	}

	return m, nil
}

// handleResize processes window resize events. The world is unaffected; only
// the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.scen.Step(m.inputFrame)
	m.simState = result.State

	// Capture the momentum baseline on the first tick after every reset so
	// drift is measured against the freshly built world.
	if m.simState.Tick <= 1 {
		m.startMomentum = worldMomentum(m.scen.World())
		m.startedAt = time.Now()
		m.runSaved = false
	}

	m.cam.Follow(m.followTarget())

	// Clear actions for next frame; the pointer persists while dragging.
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// followTarget picks what the camera tracks: the controlled entity when the
// scenario has one, otherwise the mass-weighted centroid of the world.
func (m Model) followTarget() phys.Vec {
	if c, ok := m.scen.(interface{ Controlled() *scenario.Entity }); ok {
		if ent := c.Controlled(); ent != nil {
			return ent.Body.Pos
		}
	}

	var center phys.Vec
	var total float64
	for _, b := range m.scen.World().Bodies {
		center = center.Add(b.Pos.Scale(b.Mass))
		total += b.Mass
	}
	if total == 0 {
		return phys.Vec{}
	}
	return center.Scale(1 / total)
}

// worldMomentum sums linear momentum over the movable bodies.
func worldMomentum(w *phys.World) phys.Vec {
	var p phys.Vec
	for _, b := range w.Bodies {
		if !b.Movable() {
			continue
		}
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// drift reports relative momentum drift since the run started.
func (m Model) drift() float64 {
	now := worldMomentum(m.scen.World())
	scale := m.startMomentum.Len()
	if scale < 1 {
		scale = 1
	}
	return now.Sub(m.startMomentum).Len() / scale
}

// saveRun records the finished run. Best effort: the UI exits regardless.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.simState.Tick == 0 {
		return
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunEntry{
		ScenarioID: m.scen.ID(),
		Ticks:      m.simState.Tick,
		Bodies:     m.simState.Bodies,
		WallMS:     time.Since(m.startedAt).Milliseconds(),
		Drift:      m.drift(),
	})
	m.runSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderScene()

	dir := filepath.Join(os.Getenv("HOME"), ".gravbox", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scen.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderScene redraws the screen buffer from the current world state.
func (m *Model) renderScene() {
	m.screen.Clear()
	DrawScene(m.screen, m.cam, m.scen.Entities())
	m.drawHUD()
}

// drawHUD writes the status line into the bottom row.
func (m *Model) drawHUD() {
	h := m.screen.Height()
	if h == 0 {
		return
	}

	hud := fmt.Sprintf(" %s  t=%d  bodies=%d", m.scen.Title(), m.simState.Tick, m.simState.Bodies)
	if g, ok := m.gravityOnControlled(); ok {
		hud += fmt.Sprintf("  g%c", GravityGlyph(g))
	}
	if m.simState.Status != "" {
		hud += "  " + m.simState.Status
	}
	m.screen.DrawTextColored(0, h-1, hud, core.ColorGray)

	if m.simState.Paused {
		m.screen.DrawTextCentered(h/2, "= PAUSED =")
	}
}

// gravityOnControlled returns the last gravity impulse applied to the
// controlled entity's body, if the scenario has one.
func (m *Model) gravityOnControlled() (phys.Vec, bool) {
	c, ok := m.scen.(interface{ Controlled() *scenario.Entity })
	if !ok {
		return phys.Vec{}, false
	}
	ent := c.Controlled()
	if ent == nil {
		return phys.Vec{}, false
	}
	w := m.scen.World()
	for i, b := range w.Bodies {
		if b == ent.Body {
			return w.GravityImpulse(i), true
		}
	}
	return phys.Vec{}, false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backing {
		return ""
	}

	m.renderScene()
	return RenderScreen(m.screen)
}

// WantsMenu reports whether the user backed out to the menu rather than
// quitting outright.
func (m Model) WantsMenu() bool {
	return m.backing
}

// IsQuitting reports whether the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a single scenario.
func Run(scen scenario.Scenario, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(scen, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse dragging of bodies
	)

	_, err := p.Run()
	return err
}
