package scenes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/gravbox/internal/config"
	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/scenario"
)

// pin replaces the file-chain physics tuning with the engine defaults so
// tests are independent of config files on the host.
var pinned = config.DefaultPhysicsConfig()

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"orbits", "stack", "lander", "station", "playground"} {
		if !scenario.Exists(id) {
			t.Errorf("built-in scenario %q not registered", id)
		}
	}
}

func TestOrbitsDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	run := func() []string {
		o := NewOrbits()
		o.physics = pinned
		o.Reset(cfg)
		in := core.NewInputFrame()
		for i := 0; i < 120; i++ {
			o.Step(in)
		}
		var out []string
		for _, e := range o.Entities() {
			out = append(out, e.Name, e.Body.Pos.String())
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("entity counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run diverged at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestOrbitsPlanetsStayBound(t *testing.T) {
	o := NewOrbits()
	o.physics = pinned
	cfg := core.DefaultConfig()
	o.Reset(cfg)

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		o.Step(in)
	}
	for _, e := range o.Entities() {
		if e.Kind != scenario.KindPlanet {
			continue
		}
		if r := e.Body.Pos.Len(); r > 200 {
			t.Errorf("planet %s escaped to r=%v", e.Name, r)
		}
	}
}

func TestStackSettles(t *testing.T) {
	s := NewStack()
	s.physics = pinned
	s.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	var st core.SimState
	for i := 0; i < 900; i++ {
		st = s.Step(in).State
	}

	// Crates must come to near-rest on the slab: no tunnelling through it,
	// no explosion sideways, no residual bouncing.
	for _, e := range s.Entities() {
		if e.Kind != scenario.KindCrate {
			continue
		}
		if e.Body.Pos.Y > 17.5 {
			t.Errorf("crate %s fell through the ground: y=%v", e.Name, e.Body.Pos.Y)
		}
		if e.Body.Pos.X < -60 || e.Body.Pos.X > 60 {
			t.Errorf("crate %s flew off: x=%v", e.Name, e.Body.Pos.X)
		}
		if v := e.Body.Vel.Len(); v > 5 {
			t.Errorf("crate %s still bouncing: speed=%v", e.Name, v)
		}
	}
	if !strings.Contains(st.Status, "moving=") {
		t.Errorf("status = %q", st.Status)
	}
}

func TestLanderFreeFallCrashes(t *testing.T) {
	l := NewLander()
	l.physics = pinned
	l.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	for i := 0; i < 1200 && !l.crashed && !l.landed; i++ {
		l.Step(in)
	}
	if !l.crashed {
		t.Errorf("unpowered drop did not crash: landed=%v state=%q", l.landed, l.State().Status)
	}
	if !strings.Contains(l.State().Status, "CRASHED") {
		t.Errorf("status = %q", l.State().Status)
	}
}

func TestLanderResetClearsOutcome(t *testing.T) {
	l := NewLander()
	l.physics = pinned
	l.Reset(core.DefaultConfig())
	l.crashed = true

	in := core.NewInputFrame()
	in.Set(core.ActionReset)
	l.Step(in)

	if l.crashed {
		t.Error("reset kept the crash flag")
	}
	if l.Tick() > 1 {
		t.Errorf("reset did not restart the tick counter: %d", l.Tick())
	}
}

func TestStationWeldHoldsInOrbit(t *testing.T) {
	s := NewStation()
	s.physics = pinned
	s.Reset(core.DefaultConfig())

	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		s.Step(in)
	}
	if d := s.drift(); d > 0.2 {
		t.Errorf("station came apart: drift %.0f%%", d*100)
	}
	// The assembly should still orbit, not have crashed into the planet.
	hub := s.modules[0].Body
	if r := hub.Pos.Len(); r < 15 {
		t.Errorf("station fell onto the planet: r=%v", r)
	}
}

func TestPlaygroundFromSceneFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	scene := `
physics:
  g: 5
  substeps: 2
bodies:
  - kind: circle
    y: 40
    radius: 6
    mass: 2000
    static: true
    color: yellow
  - kind: box
    x: -4
    width: 2
    height: 2
    mass: 2
    color: cyan
  - kind: box
    x: 4
    width: 2
    height: 2
    mass: 2
welds:
  - bodies: [1, 2]
`
	if err := os.WriteFile(path, []byte(scene), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewPlayground()
	p.ScenePath = path
	p.Reset(core.DefaultConfig())

	if p.loadErr != nil {
		t.Fatalf("load error: %v", p.loadErr)
	}
	ents := p.Entities()
	if len(ents) != 3 {
		t.Fatalf("entities = %d, want 3", len(ents))
	}
	if ents[0].Kind != scenario.KindPlanet || ents[0].Color != core.ColorYellow {
		t.Errorf("static body metadata wrong: %+v", ents[0])
	}
	if len(p.World().Welds) != 1 {
		t.Errorf("welds = %d, want 1", len(p.World().Welds))
	}

	in := core.NewInputFrame()
	st := p.Step(in).State
	if st.Bodies != 3 {
		t.Errorf("state bodies = %d", st.Bodies)
	}
}

func TestPlaygroundBrokenSceneStaysAlive(t *testing.T) {
	p := NewPlayground()
	p.ScenePath = "/nonexistent/scene.yaml"
	p.Reset(core.DefaultConfig())

	if p.loadErr == nil {
		t.Fatal("missing scene file did not record an error")
	}
	st := p.Step(core.NewInputFrame()).State
	if !strings.Contains(st.Status, "scene error") {
		t.Errorf("status = %q", st.Status)
	}
}
