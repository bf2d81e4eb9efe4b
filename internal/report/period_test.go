package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSegment_CoversRangeWithoutGaps(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.March, 15)

	periods, err := Segment(start, end, 7)
	assert.NoError(t, err)
	assert.NotEmpty(t, periods)

	// First period starts at the range start, last ends at the range end.
	assert.Equal(t, start, periods[0].Start)
	assert.Equal(t, end, periods[len(periods)-1].End)

	for i, p := range periods {
		assert.False(t, p.End.Before(p.Start), "period %d inverted", i)

		days := int(p.End.Sub(p.Start).Hours()/24) + 1
		if i < len(periods)-1 {
			assert.Equal(t, 7, days, "period %d must be exactly cutoff long", i)
			// Next period starts the day after this one ends.
			assert.Equal(t, p.End.AddDate(0, 0, 1), periods[i+1].Start)
		} else {
			assert.LessOrEqual(t, days, 7, "final period may only be truncated")
		}
	}
}

func TestSegment_SingleDayRange(t *testing.T) {
	d := date(2024, time.June, 3)

	periods, err := Segment(d, d, 7)
	assert.NoError(t, err)
	assert.Len(t, periods, 1)
	assert.Equal(t, d, periods[0].Start)
	assert.Equal(t, d, periods[0].End)
}

func TestSegment_ExactMultiple(t *testing.T) {
	// 28 days at a 7 day cutoff: four full periods, none truncated.
	start := date(2024, time.February, 1)
	end := date(2024, time.February, 28)

	periods, err := Segment(start, end, 7)
	assert.NoError(t, err)
	assert.Len(t, periods, 4)
	for i, p := range periods {
		days := int(p.End.Sub(p.Start).Hours()/24) + 1
		assert.Equal(t, 7, days, "period %d", i)
	}
}

func TestSegment_InvalidInputs(t *testing.T) {
	start := date(2024, time.January, 10)
	end := date(2024, time.January, 1)

	_, err := Segment(start, end, 7)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Segment(end, start, 0)
	assert.ErrorIs(t, err, ErrInvalidCutoff)

	_, err = Segment(end, start, -3)
	assert.ErrorIs(t, err, ErrInvalidCutoff)
}

func TestPeriod_Labels(t *testing.T) {
	p := Period{Start: date(2024, time.January, 8), End: date(2024, time.January, 10)}

	assert.Equal(t, "01-08-2024", p.Name())
	assert.Equal(t, "2024-01-08 to 2024-01-10", p.DateRange())
}
