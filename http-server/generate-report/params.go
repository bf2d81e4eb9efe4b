package generate_report

import (
	"fmt"
	"time"

	"tracker-golang/internal/constants"
	"tracker-golang/internal/report"
)

// generateRequest is the wire form of the generation parameters.
type generateRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	CutoffDays int     `json:"cutoff_days"`
	HourlyRate float64 `json:"hourly_rate"`
	Employee   string  `json:"employee_name"`
	Department string  `json:"department,omitempty"`
	Office     string  `json:"office,omitempty"`
}

func (req generateRequest) toParams() (report.Params, error) {
	start, err := time.Parse(constants.DateLayout, req.StartDate)
	if err != nil {
		return report.Params{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(constants.DateLayout, req.EndDate)
	if err != nil {
		return report.Params{}, fmt.Errorf("invalid end_date: %w", err)
	}

	return report.Params{
		Start:      start,
		End:        end,
		CutoffDays: req.CutoffDays,
		HourlyRate: req.HourlyRate,
		Employee:   req.Employee,
		Department: req.Department,
		Office:     req.Office,
	}, nil
}

// generateResponse reports what the run produced.
type generateResponse struct {
	Sheets  int            `json:"sheets"`
	Summary report.Summary `json:"summary"`
}
