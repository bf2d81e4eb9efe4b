package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tracker-golang/internal/report"
)

func testReport(t *testing.T) *report.Report {
	t.Helper()
	rep, err := report.Generate(
		[]map[string]string{
			{"Number": "1", "Daily Work Description": "Restock shelves", "Hr": "4", "Min": "0", "Complete": "Yes"},
			{"Number": "2", "Daily Work Description": "Close register", "Hr": "0", "Min": "30"},
		},
		report.Params{
			Start:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			CutoffDays: 7,
			HourlyRate: 10.0,
			Employee:   "Jamie Cruz",
		},
	)
	require.NoError(t, err)
	return rep
}

func TestExcel_SheetOrderAndNames(t *testing.T) {
	data, err := Excel(testReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"01-01-2024", "01-08-2024", "Total"}, f.GetSheetList())
}

func TestExcel_DailySheetLayout(t *testing.T) {
	data, err := Excel(testReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("01-01-2024", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Date", cell("A1"))
	assert.Equal(t, "Daily Recap ( - LA Office )", cell("A2"))
	assert.Equal(t, "2024-01-01 to 2024-01-07", cell("B3"))
	assert.Equal(t, "hrs", cell("D3"))
	assert.Equal(t, "4.5", cell("E3"))
	assert.Equal(t, "Jamie Cruz", cell("B4"))
	assert.Equal(t, "8.00", cell("D4"))
	assert.Equal(t, "Sales", cell("B5"))

	// Column headers on row seven, data from row eight.
	assert.Equal(t, "Number", cell("A7"))
	assert.Equal(t, "Daily Work Description", cell("B7"))
	assert.Equal(t, "Hr", cell("C7"))
	assert.Equal(t, "Min", cell("D7"))
	assert.Equal(t, "Supervisor Comments", cell("G7"))

	assert.Equal(t, "Restock shelves", cell("B8"))
	assert.Equal(t, "4", cell("C8"))
	assert.Equal(t, "Close register", cell("B9"))
	assert.Equal(t, "30", cell("D9"))
	// The second row never carried Complete, so the cell stays empty.
	assert.Equal(t, "", cell("E9"))
}

func TestExcel_TotalSheet(t *testing.T) {
	data, err := Excel(testReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	cell := func(ref string) string {
		v, err := f.GetCellValue("Total", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Summary of All Sheets", cell("B1"))
	assert.Equal(t, "Total Hours Rendered", cell("B3"))
	assert.Equal(t, "9", cell("C3"))
	assert.Equal(t, "Hourly Rate", cell("B4"))
	assert.Equal(t, "10", cell("C4"))
	assert.Equal(t, "Total (Rate * Hours)", cell("B5"))
	assert.Equal(t, "90", cell("C5"))
	assert.Equal(t, "Cutoff Days", cell("B6"))
	assert.Equal(t, "7", cell("C6"))
	assert.Equal(t, "2024-01-01 to 2024-01-10", cell("C7"))
}

func TestExcel_MergedReportsSamePeriod(t *testing.T) {
	params := report.Params{
		Start:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		CutoffDays: 7,
		HourlyRate: 10.0,
		Employee:   "Jamie Cruz",
	}

	first, err := report.Generate([]map[string]string{
		{"Number": "1", "Hr": "4", "Min": "0"},
		{"Number": "2", "Hr": "1", "Min": "0"},
	}, params)
	require.NoError(t, err)

	second, err := report.Generate([]map[string]string{
		{"Number": "9", "Hr": "2", "Min": "0"},
	}, params)
	require.NoError(t, err)

	data, err := Excel(report.Merge(first, second))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Both runs start on the same date; the second worksheet gets a suffixed
	// name instead of landing on top of the first.
	assert.Equal(t, []string{"01-01-2024", "01-01-20241", "Total"}, f.GetSheetList())

	cell := func(sheet, ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "5", cell("01-01-2024", "E3"))
	assert.Equal(t, "4", cell("01-01-2024", "C8"))
	assert.Equal(t, "1", cell("01-01-2024", "C9"))

	assert.Equal(t, "2", cell("01-01-20241", "E3"))
	assert.Equal(t, "9", cell("01-01-20241", "A8"))
	assert.Equal(t, "2", cell("01-01-20241", "C8"))
	assert.Equal(t, "", cell("01-01-20241", "A9"))

	assert.Equal(t, "7", cell("Total", "C3"))
}

func TestExcel_NoReport(t *testing.T) {
	_, err := Excel(nil)
	assert.ErrorIs(t, err, report.ErrNoReport)
}
