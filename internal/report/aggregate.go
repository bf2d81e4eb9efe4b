package report

// Summary is the single aggregate entry of a report, always rendered last as
// the Total sheet.
type Summary struct {
	TotalHours float64 `json:"total_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	TotalCost  float64 `json:"total_cost"`
	CutoffDays int     `json:"cutoff_days"`
	DateRange  string  `json:"date_range"`
}

// Aggregate sums period hours across sheets and prices them at the hourly
// rate. The sum is order independent; no rounding happens here, display
// formatting belongs to the exporters. CutoffDays and DateRange are filled by
// the caller that knows the generation parameters.
func Aggregate(sheets []Sheet, hourlyRate float64) (Summary, error) {
	if hourlyRate < 0 {
		return Summary{}, ErrInvalidRate
	}

	var total float64
	for _, s := range sheets {
		total += s.PeriodHours
	}

	return Summary{
		TotalHours: total,
		HourlyRate: hourlyRate,
		TotalCost:  total * hourlyRate,
	}, nil
}
