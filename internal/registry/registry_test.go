package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/bricks/internal/brick"
)

type stubTemplate struct{ id string }

func (s stubTemplate) ID() string    { return s.id }
func (s stubTemplate) Title() string { return "Stub " + s.id }
func (s stubTemplate) Build(WallSpec, brick.Rand) ([]*brick.Brick, error) {
	return nil, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register(stubTemplate{id: "stub-a"})
	Alias("stub-alias", "stub-a")

	for _, name := range []string{"stub-a", "stub-alias"} {
		tpl, err := Create(name)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", name, err)
		}
		if tpl.ID() != "stub-a" {
			t.Errorf("Create(%q).ID() = %q, expected %q", name, tpl.ID(), "stub-a")
		}
		if !Exists(name) {
			t.Errorf("Exists(%q) = false, expected true", name)
		}
	}

	var found bool
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if len(info.Aliases) != 1 || info.Aliases[0] != "stub-alias" {
				t.Errorf("Aliases = %v, expected [stub-alias]", info.Aliases)
			}
		}
	}
	if !found {
		t.Error("List() should include stub-a")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-template")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("Create error = %v, expected ErrUnknownTemplate", err)
	}
	if Exists("no-such-template") {
		t.Error("Exists should be false for unknown names")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(stubTemplate{id: "stub-dup"})
	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate template should panic")
		}
	}()
	Register(stubTemplate{id: "stub-dup"})
}

func TestListSorted(t *testing.T) {
	Register(stubTemplate{id: "stub-z"})
	Register(stubTemplate{id: "stub-b"})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
