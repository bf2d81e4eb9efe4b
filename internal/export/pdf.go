package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tracker-golang/internal/report"
)

// PDF renders the summary mirror of a report: an overall summary table read
// from the Summary entry and a per-sheet hours breakdown. Values are taken
// from the already-computed report, never recomputed, so the PDF always
// agrees with the workbook.
func PDF(rep *report.Report) ([]byte, error) {
	const op = "export.PDF"

	if rep == nil {
		return nil, report.ErrNoReport
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(0, 90, 158)
	pdf.CellFormat(0, 12, "Tracker - Summary Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Report Generated: "+time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	writeHeading(pdf, "Overall Summary")
	writeTableHeader(pdf, "Metric", "Value", 95, 95)
	pdf.SetFont("Helvetica", "", 11)
	summaryRows := [][2]string{
		{"Total Hours Rendered", formatFloat(rep.Summary.TotalHours)},
		{"Hourly Rate", formatFloat(rep.Summary.HourlyRate)},
		{"Total (Rate * Hours)", formatFloat(rep.Summary.TotalCost)},
		{"Cutoff Days", strconv.Itoa(rep.Summary.CutoffDays)},
		{"Date Range", rep.Summary.DateRange},
	}
	for _, row := range summaryRows {
		pdf.CellFormat(95, 8, row[0], "1", 0, "C", false, 0, "")
		pdf.CellFormat(95, 8, row[1], "1", 1, "C", false, 0, "")
	}
	pdf.Ln(10)

	// One row per period sheet; the Total entry is the table above.
	writeHeading(pdf, "Sheet Breakdown")
	writeTableHeader(pdf, "Sheet Name", "Hours Rendered", 120, 50)
	pdf.SetFont("Helvetica", "", 11)
	for i, sheet := range rep.Sheets {
		if i%2 == 1 {
			pdf.SetFillColor(211, 211, 211)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}
		pdf.CellFormat(120, 8, sheet.Name, "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 8, formatFloat(sheet.PeriodHours), "1", 1, "C", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeTableHeader(pdf *gofpdf.Fpdf, left, right string, leftWidth, rightWidth float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(0, 122, 204)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(leftWidth, 9, left, "1", 0, "C", true, 0, "")
	pdf.CellFormat(rightWidth, 9, right, "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
