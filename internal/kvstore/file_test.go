package kvstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tasktrack/internal/kvstore"
)

func TestFileStore_GetFromMissingDir(t *testing.T) {
	s := kvstore.NewFileStore(filepath.Join(t.TempDir(), "not-yet"))

	_, ok, err := s.Get("tasks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected key to be absent")
	}
}

func TestFileStore_SetCreatesDirAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := kvstore.NewFileStore(dir)

	if err := s.Set("tasks", []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("tasks", []byte("second")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := s.Get("tasks")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != "second" {
		t.Errorf("expected %q, got %q", "second", got)
	}

	info, err := os.Stat(filepath.Join(dir, "tasks"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}
}

func TestFileStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := kvstore.NewFileStore(dir)

	for i := 0; i < 3; i++ {
		if err := s.Set("tasks", []byte("[]")); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("unexpected temp file left behind: %s", e.Name())
		}
	}
}

func TestFileStore_InvalidKeys(t *testing.T) {
	s := kvstore.NewFileStore(t.TempDir())

	for _, key := range []string{"", "  ", "../escape", "a/b", `a\b`, ".lock"} {
		if err := s.Set(key, []byte("x")); !errors.Is(err, kvstore.ErrInvalidKey) {
			t.Errorf("Set(%q): expected ErrInvalidKey, got %v", key, err)
		}
		if _, _, err := s.Get(key); !errors.Is(err, kvstore.ErrInvalidKey) {
			t.Errorf("Get(%q): expected ErrInvalidKey, got %v", key, err)
		}
	}
}

func TestFileStore_WithAdapter(t *testing.T) {
	s := kvstore.NewFileStore(t.TempDir())
	a := kvstore.NewAdapter(s, nil, nil)

	kvstore.Save(a, "items", items{{Name: "disk", Count: 7}})
	if a.Err() != nil {
		t.Fatalf("save: %v", a.Err())
	}

	fresh := kvstore.NewAdapter(kvstore.NewFileStore(s.Dir()), nil, nil)
	got := kvstore.Load(fresh, "items", items{})
	if len(got) != 1 || got[0].Name != "disk" || got[0].Count != 7 {
		t.Errorf("unexpected value: %+v", got)
	}
}
