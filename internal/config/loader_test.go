package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPlaygroundCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	scene := `
physics:
  g: 25
  substeps: 2
bodies:
  - kind: box
    x: 1
    y: 2
    width: 4
    height: 4
    mass: 10
  - kind: circle
    x: 5
    y: 5
    radius: 2
    mass: 3
welds:
  - bodies: [0, 1]
`
	if err := os.WriteFile(path, []byte(scene), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlayground(path)
	if err != nil {
		t.Fatalf("LoadPlayground: %v", err)
	}
	if cfg.Physics.G != 25 || cfg.Physics.Substeps != 2 {
		t.Errorf("physics not loaded: %+v", cfg.Physics)
	}
	if len(cfg.Bodies) != 2 || cfg.Bodies[0].Kind != "box" || cfg.Bodies[1].Radius != 2 {
		t.Errorf("bodies not loaded: %+v", cfg.Bodies)
	}
	if len(cfg.Welds) != 1 || len(cfg.Welds[0].Bodies) != 2 {
		t.Errorf("welds not loaded: %+v", cfg.Welds)
	}
}

func TestLoadPlaygroundMissingCustomPath(t *testing.T) {
	if _, err := LoadPlayground("/nonexistent/scene.yaml"); err == nil {
		t.Error("missing explicit path did not error")
	}
}

func TestLoadPlaygroundInvalidScene(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name  string
		scene string
		want  string
	}{
		{
			"unknown kind",
			"bodies:\n  - kind: blob\n    mass: 1\n",
			"unknown kind",
		},
		{
			"zero mass",
			"bodies:\n  - kind: box\n    width: 1\n    height: 1\n",
			"mass must be positive",
		},
		{
			"weld out of range",
			"bodies:\n  - kind: box\n    width: 1\n    height: 1\n    mass: 1\n" +
				"  - kind: box\n    width: 1\n    height: 1\n    mass: 1\n" +
				"welds:\n  - bodies: [0, 5]\n",
			"out of range",
		},
		{
			"weld on static body",
			"bodies:\n  - kind: box\n    width: 1\n    height: 1\n    mass: 1\n    static: true\n" +
				"  - kind: box\n    width: 1\n    height: 1\n    mass: 1\n" +
				"welds:\n  - bodies: [0, 1]\n",
			"static",
		},
	}
	for _, c := range cases {
		path := filepath.Join(dir, strings.ReplaceAll(c.name, " ", "_")+".yaml")
		if err := os.WriteFile(path, []byte(c.scene), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadPlayground(path)
		if err == nil {
			t.Errorf("%s: invalid scene accepted", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}

func TestLoadPlaygroundEmbeddedDefault(t *testing.T) {
	// With no custom path and no config files around, the embedded scene
	// loads and validates.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPlayground("")
	if err != nil {
		t.Fatalf("LoadPlayground: %v", err)
	}
	if len(cfg.Bodies) == 0 {
		t.Error("embedded default has no bodies")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default does not validate: %v", err)
	}
	if cfg.Physics.G <= 0 {
		t.Errorf("embedded default physics not set: %+v", cfg.Physics)
	}
}

func TestLoadPhysicsFallsBackToDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPhysics("")
	if err != nil {
		t.Fatalf("LoadPhysics: %v", err)
	}
	if cfg != DefaultPhysicsConfig() {
		t.Errorf("fallback config = %+v, want defaults", cfg)
	}
}

func TestValidateAcceptsDefaultScene(t *testing.T) {
	if err := DefaultPlaygroundConfig().Validate(); err != nil {
		t.Errorf("hardcoded default scene invalid: %v", err)
	}
}
