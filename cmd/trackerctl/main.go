package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"tracker-golang/internal/constants"
	"tracker-golang/internal/export"
	"tracker-golang/internal/ingest"
	"tracker-golang/internal/report"
)

// GenerateCmd builds a full report from a work log file without a running
// server or database, writing the xlsx, pdf and csv outputs side by side.
type GenerateCmd struct {
	input      string
	start      string
	end        string
	cutoff     int
	rate       float64
	name       string
	department string
	office     string
	outDir     string
}

func NewGenerateCmd() *cobra.Command {
	gc := &GenerateCmd{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a report from a work log file",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.input, "input", "", "Path to the work log file (txt, csv or xlsx)")
	cmd.Flags().StringVar(&gc.start, "start", "", "Report start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.end, "end", "", "Report end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&gc.cutoff, "cutoff", 7, "Cutoff length in days per sheet")
	cmd.Flags().Float64Var(&gc.rate, "rate", 0, "Hourly rate for the total cost")
	cmd.Flags().StringVar(&gc.name, "name", "", "Employee name printed on every sheet")
	cmd.Flags().StringVar(&gc.department, "department", constants.DefaultDepartment, "Department printed on every sheet")
	cmd.Flags().StringVar(&gc.office, "office", constants.DefaultOffice, "Office printed in the sheet title")
	cmd.Flags().StringVar(&gc.outDir, "out-dir", ".", "Directory for the generated files")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, args []string) error {
	start, err := time.Parse(constants.DateLayout, gc.start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", gc.start, err)
	}
	end, err := time.Parse(constants.DateLayout, gc.end)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", gc.end, err)
	}

	ds, err := ingest.LoadFile(gc.input)
	if err != nil {
		return fmt.Errorf("failed to load work log: %w", err)
	}

	rep, err := report.Generate(ds.Rows, report.Params{
		Start:      start,
		End:        end,
		CutoffDays: gc.cutoff,
		HourlyRate: gc.rate,
		Employee:   gc.name,
		Department: gc.department,
		Office:     gc.office,
	})
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := os.MkdirAll(gc.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	stamp := time.Now().Format("2006-01-02_150405")

	xlsx, err := export.Excel(rep)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	if err := gc.write(cmd, fmt.Sprintf("Tracker_Report_%s.xlsx", stamp), xlsx); err != nil {
		return err
	}

	pdf, err := export.PDF(rep)
	if err != nil {
		return fmt.Errorf("failed to build pdf: %w", err)
	}
	if err := gc.write(cmd, fmt.Sprintf("Tracker_Report_%s.pdf", stamp), pdf); err != nil {
		return err
	}

	csv, err := export.CSV(report.ProjectColumns(ds.Columns), report.Project(ds.Rows))
	if err != nil {
		return fmt.Errorf("failed to build csv: %w", err)
	}
	if err := gc.write(cmd, fmt.Sprintf("Tracker_Data_%s.csv", stamp), csv); err != nil {
		return err
	}

	cmd.Printf("Report generated: %d sheets, %.2f hours, %.2f total\n",
		len(rep.Sheets), rep.Summary.TotalHours, rep.Summary.TotalCost)

	return nil
}

func (gc *GenerateCmd) write(cmd *cobra.Command, name string, data []byte) error {
	path := filepath.Join(gc.outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cmd.Println(path)
	return nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trackerctl",
		Short: "Work log report generator",
	}
	cmd.AddCommand(NewGenerateCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
