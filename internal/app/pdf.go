package app

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/wikibrief/wikibrief/internal/workflow"
)

// writeReportPDF renders a minimal PDF: industry title, the sanitized
// report body with heading lines emphasized, and the reference pages as
// clickable links. This is intentionally simple and not a full layout
// engine.
func writeReportPDF(sess workflow.Session, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, sess.Industry, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 11)

	scanner := bufio.NewScanner(strings.NewReader(sess.Report))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if strings.HasPrefix(s, "#") {
			text := strings.TrimSpace(strings.TrimLeft(s, "#"))
			if text == "" {
				continue
			}
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		pdf.MultiCell(0, 5, s, "", "L", false)
	}

	if len(sess.References) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Reference pages", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for i, ref := range sess.References {
			pdf.Write(5, fmt.Sprintf("%d. ", i+1))
			pdf.WriteLinkString(5, ref.Title, ref.URL)
			pdf.Ln(6)
		}
	}

	return pdf.OutputFileAndClose(outPath)
}
