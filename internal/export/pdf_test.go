package export

import (
	"bytes"
	"strings"
	"testing"

	"tasktrack/internal/tasks"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	list := []tasks.Task{
		{ID: 1, Text: "buy milk"},
		{ID: 2, Text: "walk dog", Completed: true},
	}

	if err := WritePDF(&buf, "Tasks (all)", list); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Fatalf("expected PDF header, got %q", out[:min(len(out), 16)])
	}
	for _, want := range []string{"buy milk", "walk dog"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestWritePDF_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, "Tasks", nil); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !strings.Contains(buf.String(), "no tasks") {
		t.Error("expected placeholder for empty list")
	}
}
