package registry

import (
	"errors"
	"testing"

	"github.com/L0weN/ArmorCrush/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "second", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", "first", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	info, ok := Info("stub_a")
	if !ok || info.Title != "Stub stub_a" || info.Description != "first" {
		t.Errorf("Info(stub_a) = %+v, %v", info, ok)
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create(stub_b) error: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create(stub_b).ID() = %q", g.ID())
	}

	var ids []string
	for _, gi := range List() {
		ids = append(ids, gi.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })
}
