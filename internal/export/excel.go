package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"tracker-golang/internal/constants"
	"tracker-golang/internal/report"
)

// Excel serializes a report into a native xlsx workbook: one worksheet per
// period sheet, named by the period start date, plus the Total sheet last.
// Every cell value is transcribed from the report as-is, nothing is computed
// here.
func Excel(rep *report.Report) ([]byte, error) {
	const op = "export.Excel"

	if rep == nil {
		return nil, report.ErrNoReport
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	used := make(map[string]bool)
	for _, sheet := range rep.Sheets {
		name := worksheetName(used, sheet.Name)
		if err := writeDailySheet(f, styles, name, sheet); err != nil {
			return nil, fmt.Errorf("%s: sheet %s: %w", op, name, err)
		}
	}
	if err := writeTotalSheet(f, styles, rep.Summary); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// The default sheet was only a placeholder while the real ones were added.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

type workbookStyles struct {
	title     int
	header    int
	label     int
	value     int
	highlight int
	bandEven  int
	bandOdd   int
	textEven  int
	textOdd   int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 16, Color: constants.ColorWhite},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{constants.ColorTitleFill}, Pattern: 1},
		Alignment: center,
	})
	if err != nil {
		return s, err
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: constants.ColorWhite},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{constants.ColorHeaderFill}, Pattern: 1},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return s, err
	}
	s.label, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{constants.ColorLabelFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thin,
	})
	if err != nil {
		return s, err
	}
	s.value, err = f.NewStyle(&excelize.Style{
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return s, err
	}
	s.highlight, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: "000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{constants.ColorHighlightFill}, Pattern: 1},
		Alignment: center,
		Border:    thin,
	})
	if err != nil {
		return s, err
	}

	// Data rows alternate shading by row parity; description and comment
	// columns stay left aligned, everything else is centered.
	band := func(color, horizontal string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: horizontal, Vertical: "center"},
			Border:    thin,
		})
	}
	if s.bandEven, err = band(constants.ColorBandFill, "center"); err != nil {
		return s, err
	}
	if s.bandOdd, err = band(constants.ColorWhite, "center"); err != nil {
		return s, err
	}
	if s.textEven, err = band(constants.ColorBandFill, "left"); err != nil {
		return s, err
	}
	if s.textOdd, err = band(constants.ColorWhite, "left"); err != nil {
		return s, err
	}

	return s, nil
}

// worksheetName resolves the tab name for a period sheet. Merged reports can
// repeat a period start date, and excelize reuses the existing worksheet for
// a duplicate name, so collisions get a numeric suffix.
func worksheetName(used map[string]bool, base string) string {
	name := base
	for n := 1; used[name]; n++ {
		name = fmt.Sprintf("%s%d", base, n)
	}
	used[name] = true
	return name
}

func writeDailySheet(f *excelize.File, styles workbookStyles, name string, sheet report.Sheet) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 12}, {"B", 25}, {"C", 60}, {"D", 8}, {"E", 8}, {"F", 12}, {"G", 15}, {"H", 60},
	}
	for _, w := range widths {
		if err := f.SetColWidth(name, w.col, w.col, w.width); err != nil {
			return err
		}
	}

	// Fixed header block, rows one through six.
	f.SetCellValue(name, "A1", "Date")
	f.SetRowHeight(name, 1, 20)

	if err := f.MergeCell(name, "A2", "H2"); err != nil {
		return err
	}
	f.SetCellValue(name, "A2", sheet.Title())
	f.SetCellStyle(name, "A2", "H2", styles.title)
	f.SetRowHeight(name, 2, 30)

	f.SetCellValue(name, "A3", "Date")
	f.SetCellValue(name, "B3", sheet.Period.DateRange())
	f.SetCellValue(name, "D3", "hrs")
	f.SetCellValue(name, "E3", sheet.PeriodHours)
	f.SetRowHeight(name, 3, 20)

	f.SetCellValue(name, "A4", "Name")
	f.SetCellValue(name, "B4", sheet.Employee)
	f.SetCellValue(name, "D4", constants.DailyHoursLabel)
	f.SetRowHeight(name, 4, 20)

	f.SetCellValue(name, "A5", "Department")
	f.SetCellValue(name, "B5", sheet.Department)
	f.SetRowHeight(name, 5, 20)

	f.SetRowHeight(name, 6, 8)

	// Column headers on row seven.
	for i, header := range sheet.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 7)
		f.SetCellValue(name, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(sheet.Columns), 7)
	f.SetCellStyle(name, "A7", lastHeader, styles.header)
	f.SetRowHeight(name, 7, 26)

	// Data rows from row eight.
	for i, row := range sheet.Rows {
		rowNum := i + 8
		for col, field := range sheet.Columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(name, cell, row.Value(field))
		}
		f.SetRowHeight(name, rowNum, 20)

		bandStyle, textStyle := styles.bandOdd, styles.textOdd
		if rowNum%2 == 0 {
			bandStyle, textStyle = styles.bandEven, styles.textEven
		}
		for c := 1; c <= 8; c++ {
			cell, _ := excelize.CoordinatesToCellName(c, rowNum)
			if c == 3 || c == 8 {
				f.SetCellStyle(name, cell, cell, textStyle)
			} else {
				f.SetCellStyle(name, cell, cell, bandStyle)
			}
		}
	}

	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      7,
		TopLeftCell: "A8",
		ActivePane:  "bottomLeft",
	})
}

func writeTotalSheet(f *excelize.File, styles workbookStyles, summary report.Summary) error {
	name := constants.TotalSheetName
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	f.SetColWidth(name, "A", "A", 2)
	f.SetColWidth(name, "B", "B", 30)
	f.SetColWidth(name, "C", "E", 15)

	if err := f.MergeCell(name, "B1", "E1"); err != nil {
		return err
	}
	f.SetCellValue(name, "B1", "Summary of All Sheets")
	f.SetCellStyle(name, "B1", "E1", styles.title)
	f.SetRowHeight(name, 1, 30)

	entries := []struct {
		label string
		value interface{}
	}{
		{"Total Hours Rendered", summary.TotalHours},
		{"Hourly Rate", summary.HourlyRate},
		{"Total (Rate * Hours)", summary.TotalCost},
		{"Cutoff Days", summary.CutoffDays},
		{"Date Range", summary.DateRange},
	}
	for i, entry := range entries {
		rowNum := i + 3
		labelCell, _ := excelize.CoordinatesToCellName(2, rowNum)
		valueCell, _ := excelize.CoordinatesToCellName(3, rowNum)
		f.SetCellValue(name, labelCell, entry.label)
		f.SetCellStyle(name, labelCell, labelCell, styles.label)
		f.SetCellValue(name, valueCell, entry.value)
		f.SetCellStyle(name, valueCell, valueCell, styles.value)
		f.SetRowHeight(name, rowNum, 24)
	}

	// The cost line stands out.
	f.SetCellStyle(name, "C5", "C5", styles.highlight)

	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      2,
		TopLeftCell: "B3",
		ActivePane:  "bottomRight",
	})
}
