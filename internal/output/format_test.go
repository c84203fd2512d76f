package output

import (
	"bytes"
	"testing"

	"tasktrack/internal/service"
	"tasktrack/internal/tasks"
)

func TestFormatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatTask(&buf, 1, tasks.Task{ID: 1, Text: "buy milk"})
	FormatTask(&buf, 12, tasks.Task{ID: 2, Text: "call\nmum", Completed: true})

	expected := "   1  [ ] buy milk\n  12  [x] call mum\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatRemoteTask_Untitled(t *testing.T) {
	var buf bytes.Buffer
	FormatRemoteTask(&buf, 3, service.Task{Title: "  "})

	expected := "       3  (untitled)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatListHeader(t *testing.T) {
	var buf bytes.Buffer
	FormatListHeader(&buf, "My Tasks", true)

	expected := "------------\nMy Tasks [default]\n------------\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
