package registry

import (
	"testing"

	"github.com/giladgray/cartographist/internal/core"
)

type stubGame struct {
	id string
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }
func (s *stubGame) Controls() string { return "Q: Quit" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game not found")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	info, ok := Lookup("zz_stub")
	if !ok || info.Title != "Stub zz_stub" || info.Controls != "Q: Quit" {
		t.Errorf("Lookup = %+v, %v", info, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("does_not_exist") {
		t.Error("Exists should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
