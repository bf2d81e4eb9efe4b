package report

import (
	"fmt"
	"time"

	"tracker-golang/internal/constants"
)

// Period is one reporting sub-interval of the overall date range, closed on
// both ends. Dates are naive calendar days, time of day is ignored.
type Period struct {
	Start time.Time
	End   time.Time
}

// Name returns the MM-DD-YYYY label the period's sheet is known by.
func (p Period) Name() string {
	return p.Start.Format(constants.SheetNameLayout)
}

// DateRange returns the "YYYY-MM-DD to YYYY-MM-DD" display string.
func (p Period) DateRange() string {
	return fmt.Sprintf("%s to %s", p.Start.Format(constants.DateLayout), p.End.Format(constants.DateLayout))
}

// Segment splits [start, end] into consecutive periods of cutoffDays days.
// The periods are contiguous, non-overlapping and cover the range exactly;
// only the last one may be shorter than cutoffDays. A single-day range still
// yields one period.
func Segment(start, end time.Time, cutoffDays int) ([]Period, error) {
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	if cutoffDays < 1 {
		return nil, ErrInvalidCutoff
	}

	var periods []Period
	current := start
	for !current.After(end) {
		segEnd := current.AddDate(0, 0, cutoffDays-1)
		if segEnd.After(end) {
			segEnd = end
		}
		periods = append(periods, Period{Start: current, End: segEnd})
		current = segEnd.AddDate(0, 0, 1)
	}

	return periods, nil
}
