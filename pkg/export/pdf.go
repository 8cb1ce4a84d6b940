package export

import (
	"bytes"
	"fmt"

	"study-canvas-be/internal/entity"
	"study-canvas-be/pkg/blocks"

	"github.com/go-pdf/fpdf"
)

// RenderNotes builds a PDF document from the given notes. Pure function of
// its input: no persistence side effects.
func RenderNotes(notes []*entity.Note) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Study Notes", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Study Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d notes", len(notes)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, note := range notes {
		renderNote(pdf, note)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderNote(pdf *fpdf.Fpdf, note *entity.Note) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, note.Title, "", "L", false)

	if note.Course != nil {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Course: "+note.Course.Name, "", "L", false)
	}

	pdf.SetFont("Helvetica", "", 10)
	text := blocks.ParseContent(note.Content)
	if text != "" {
		pdf.MultiCell(0, 5, text, "", "L", false)
	}

	if note.MainTakeaway != nil && *note.MainTakeaway != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 5, "Takeaway: "+*note.MainTakeaway, "", "L", false)
	}

	if len(note.Concepts) > 0 {
		names := make([]string, len(note.Concepts))
		for i, c := range note.Concepts {
			names[i] = c.Name
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "Concepts: "+joinComma(names), "", "L", false)
	}

	pdf.Ln(6)
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
