package tasks

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{
		"all":        FilterAll,
		"Active":     FilterActive,
		" completed": FilterCompleted,
	} {
		got, err := ParseFilter(in)
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFilter(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseFilter("done"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestIDGenerator_ClockGoesBackwards(t *testing.T) {
	times := []int64{1000, 1000, 900, 2000}
	i := 0
	g := NewIDGenerator(func() time.Time {
		ms := times[i]
		i++
		return time.UnixMilli(ms)
	})

	want := []int64{1000, 1001, 1002, 2000}
	for _, w := range want {
		got, err := g.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != w {
			t.Errorf("expected %d, got %d", w, got)
		}
	}
}

func TestIDGenerator_Observe(t *testing.T) {
	g := NewIDGenerator(func() time.Time { return time.UnixMilli(10) })
	g.Observe(50)
	g.Observe(20)

	if got, _ := g.Next(); got != 51 {
		t.Errorf("expected 51, got %d", got)
	}
}

func TestIDGenerator_ExhaustedAtMaxID(t *testing.T) {
	g := NewIDGenerator(func() time.Time { return time.UnixMilli(10) })
	g.Observe(math.MaxInt64)

	if _, err := g.Next(); !errors.Is(err, ErrIDsExhausted) {
		t.Fatalf("expected ErrIDsExhausted, got %v", err)
	}
	if g.last != MaxID {
		t.Errorf("expected last clamped to MaxID, got %d", g.last)
	}
}

func TestIDGenerator_LastIDBelowMax(t *testing.T) {
	g := NewIDGenerator(func() time.Time { return time.UnixMilli(10) })
	g.Observe(MaxID - 1)

	got, err := g.Next()
	if err != nil || got != MaxID {
		t.Fatalf("expected %d, got %d (%v)", MaxID, got, err)
	}
	if _, err := g.Next(); !errors.Is(err, ErrIDsExhausted) {
		t.Errorf("expected ErrIDsExhausted after MaxID, got %v", err)
	}
}

func TestTaskListValidate(t *testing.T) {
	ok := taskList{{ID: 1, Text: "a"}, {ID: 2, Text: "b", Completed: true}}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := taskList{{ID: 0, Text: "a"}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero id")
	}

	tooBig := taskList{{ID: MaxID + 1, Text: "a"}}
	if err := tooBig.Validate(); err == nil {
		t.Error("expected error for id above MaxID")
	}
}
