package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Totals(t *testing.T) {
	sheets := []Sheet{
		{Name: "01-01-2024", PeriodHours: 12.5},
		{Name: "01-08-2024", PeriodHours: 7.25},
		{Name: "01-15-2024", PeriodHours: 0},
	}

	summary, err := Aggregate(sheets, 10.0)
	assert.NoError(t, err)
	assert.InDelta(t, 19.75, summary.TotalHours, 1e-9)
	assert.InDelta(t, 197.5, summary.TotalCost, 1e-9)
	assert.Equal(t, 10.0, summary.HourlyRate)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	sheets := []Sheet{
		{PeriodHours: 1.1}, {PeriodHours: 2.2}, {PeriodHours: 3.3}, {PeriodHours: 4.4},
	}
	reversed := []Sheet{
		{PeriodHours: 4.4}, {PeriodHours: 3.3}, {PeriodHours: 2.2}, {PeriodHours: 1.1},
	}

	a, err := Aggregate(sheets, 12.0)
	assert.NoError(t, err)
	b, err := Aggregate(reversed, 12.0)
	assert.NoError(t, err)

	assert.InDelta(t, a.TotalHours, b.TotalHours, 1e-9)
	assert.InDelta(t, a.TotalCost, b.TotalCost, 1e-9)
}

func TestAggregate_EmptySheetSet(t *testing.T) {
	summary, err := Aggregate(nil, 25.0)
	assert.NoError(t, err)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.TotalCost)
}

func TestAggregate_NegativeRateRejected(t *testing.T) {
	_, err := Aggregate([]Sheet{{PeriodHours: 8}}, -1.0)
	assert.ErrorIs(t, err, ErrInvalidRate)
}
