package commands

import (
	"errors"
	"testing"

	"tasktrack/internal/tasks"
)

func TestParseTaskRef_Number(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID {
		t.Error("expected ByID to be false")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_ID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"id:1700000000123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID || ref.ID != 1700000000123 {
		t.Errorf("unexpected ref: %+v", ref)
	}
}

func TestParseTaskRef_NoArgs(t *testing.T) {
	_, err := ParseTaskRef([]string{})
	if err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	for _, arg := range []string{"abc", "a1", "-1", "1.5", "id:", "id:abc", "id:0", "id:+5"} {
		_, err := ParseTaskRef([]string{arg})
		if err == nil {
			t.Errorf("expected error for %q", arg)
			continue
		}
		if expected := "invalid task reference: " + arg; err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	}
}

func TestParseTaskRef_ExtraArgument(t *testing.T) {
	_, err := ParseTaskRef([]string{"1", "2"})
	if err == nil || err.Error() != "unexpected argument: 2" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTaskRefResolve(t *testing.T) {
	list := []tasks.Task{{ID: 10, Text: "a"}, {ID: 20, Text: "b"}}

	got, err := TaskRef{Num: 2}.Resolve(list)
	if err != nil || got.ID != 20 {
		t.Errorf("expected task 20, got %+v (%v)", got, err)
	}

	got, err = TaskRef{ID: 10, ByID: true}.Resolve(list)
	if err != nil || got.Text != "a" {
		t.Errorf("expected task a, got %+v (%v)", got, err)
	}

	if _, err := (TaskRef{Num: 3}).Resolve(list); !errors.Is(err, ErrTaskOutOfRange) {
		t.Errorf("expected ErrTaskOutOfRange, got %v", err)
	}
	if _, err := (TaskRef{ID: 30, ByID: true}).Resolve(list); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRegistry_DuplicateAlias(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&ToggleCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Register(&ToggleCmd{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}

	cmd, ok := r.Find("done")
	if !ok || cmd.Name() != "toggle" {
		t.Errorf("expected alias done to resolve to toggle, got %v", cmd)
	}
	if len(r.All()) != 1 {
		t.Errorf("expected 1 unique command, got %d", len(r.All()))
	}
}
