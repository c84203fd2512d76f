// Package export renders task sequences to documents.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"tasktrack/internal/tasks"
)

// WritePDF writes an A4 report listing list under title.
// Text is converted to the core font's code page; characters it lacks are
// replaced.
func WritePDF(w io.Writer, title string, list []tasks.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	if len(list) == 0 {
		pdf.MultiCell(0, 6, "(no tasks)", "0", "L", false)
	}
	for i, t := range list {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("%d. [%s] %s", i+1, mark, t.Text)
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
