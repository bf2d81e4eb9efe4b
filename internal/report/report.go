package report

import (
	"fmt"
	"strings"
	"time"

	"tracker-golang/internal/constants"
)

// Params are the generation inputs collected at the boundary.
type Params struct {
	Start      time.Time
	End        time.Time
	CutoffDays int
	HourlyRate float64
	Employee   string
	Department string
	Office     string
}

// Report is the in-memory workbook: ordered period sheets plus exactly one
// Summary, which is always rendered after the sheets. It only leaves the
// process through the export adapters.
type Report struct {
	Sheets  []Sheet
	Summary Summary
}

// Generate runs the whole pipeline: segment the range, project the rows, lay
// out one sheet per period and aggregate the totals. The full projected
// dataset is applied to every period sheet; see DESIGN.md for why this is
// kept rather than filtering rows per period.
func Generate(raw []map[string]string, p Params) (*Report, error) {
	const op = "report.Generate"

	if strings.TrimSpace(p.Employee) == "" {
		return nil, ErrEmptyEmployee
	}

	periods, err := Segment(p.Start, p.End, p.CutoffDays)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	department := p.Department
	if department == "" {
		department = constants.DefaultDepartment
	}
	office := p.Office
	if office == "" {
		office = constants.DefaultOffice
	}

	rows := Project(raw)
	sheets := make([]Sheet, 0, len(periods))
	for _, period := range periods {
		sheets = append(sheets, BuildSheet(period, rows, p.Employee, department, office))
	}

	summary, err := Aggregate(sheets, p.HourlyRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	summary.CutoffDays = p.CutoffDays
	summary.DateRange = fmt.Sprintf("%s to %s",
		p.Start.Format(constants.DateLayout), p.End.Format(constants.DateLayout))

	return &Report{Sheets: sheets, Summary: summary}, nil
}

// Merge combines two reports into a new one: existing sheets first, incoming
// sheets appended after, and a single fresh Summary recomputed over the whole
// merged set. Rate, cutoff and date range are taken from the incoming run,
// matching how appending a new generation always refreshed the Total sheet.
// Neither input is modified; a nil existing report yields the incoming one.
func Merge(existing, incoming *Report) *Report {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	sheets := make([]Sheet, 0, len(existing.Sheets)+len(incoming.Sheets))
	sheets = append(sheets, existing.Sheets...)
	sheets = append(sheets, incoming.Sheets...)

	// Rate is non-negative on any generated report, so Aggregate cannot fail.
	summary, _ := Aggregate(sheets, incoming.Summary.HourlyRate)
	summary.CutoffDays = incoming.Summary.CutoffDays
	summary.DateRange = incoming.Summary.DateRange

	return &Report{Sheets: sheets, Summary: summary}
}
