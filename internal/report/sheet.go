package report

import (
	"strconv"
	"strings"

	"tracker-golang/internal/constants"
)

// Sheet is one rendered period. Identity is the period start date; every
// projected row of the current dataset appears on every sheet.
type Sheet struct {
	Name        string
	Period      Period
	Employee    string
	Department  string
	Office      string
	Columns     []string
	Rows        []Row
	PeriodHours float64
}

// BuildSheet lays one period out as a sheet and computes its hour total.
// Row order follows the input exactly; rows are not copied and must not be
// mutated afterwards.
func BuildSheet(period Period, rows []Row, employee, department, office string) Sheet {
	var hours float64
	for _, row := range rows {
		hours += parseLenient(row.Value(constants.FieldHours)) + parseLenient(row.Value(constants.FieldMinutes))/60.0
	}

	return Sheet{
		Name:        period.Name(),
		Period:      period,
		Employee:    employee,
		Department:  department,
		Office:      office,
		Columns:     constants.ReportFields,
		Rows:        rows,
		PeriodHours: hours,
	}
}

// Title returns the banner text shown on row two of the sheet.
func (s Sheet) Title() string {
	return "Daily Recap ( - " + s.Office + " )"
}

// parseLenient turns a cell value into a float. Absent, empty and non-numeric
// values count as zero: a bad Hr/Min cell must never fail a whole report.
func parseLenient(val string) float64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return f
}
