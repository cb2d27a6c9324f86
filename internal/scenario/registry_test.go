package scenario

import (
	"testing"

	"github.com/vovakirdan/gravbox/internal/core"
	"github.com/vovakirdan/gravbox/internal/phys"
)

type fakeScenario struct {
	Sim
	id string
}

func (f *fakeScenario) ID() string    { return f.id }
func (f *fakeScenario) Title() string { return "Fake " + f.id }

func (f *fakeScenario) Reset(cfg core.RuntimeConfig) {
	f.Rebuild(cfg, phys.NewWorld(phys.Params{}), nil)
}

func (f *fakeScenario) Step(in core.InputFrame) core.StepResult {
	f.Advance(in)
	return core.StepResult{State: f.State()}
}

func TestRegistry(t *testing.T) {
	Register("zz-fake", func() Scenario { return &fakeScenario{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered scenario not found")
	}
	if Exists("never-registered") {
		t.Error("unknown ID reported as existing")
	}

	s, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID() != "zz-fake" || s.Title() != "Fake zz-fake" {
		t.Errorf("created scenario: id=%q title=%q", s.ID(), s.Title())
	}

	if _, err := Create("never-registered"); err == nil {
		t.Error("creating an unknown scenario did not error")
	}

	infos := List()
	found := false
	for i, info := range infos {
		if info.ID == "zz-fake" {
			found = true
			if info.Title != "Fake zz-fake" {
				t.Errorf("listed title = %q", info.Title)
			}
		}
		if i > 0 && infos[i-1].ID >= info.ID {
			t.Errorf("list not sorted: %q before %q", infos[i-1].ID, info.ID)
		}
	}
	if !found {
		t.Error("registered scenario missing from List")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register("zz-dup", func() Scenario { return &fakeScenario{id: "zz-dup"} })
	Register("zz-dup", func() Scenario { return &fakeScenario{id: "zz-dup"} })
}
