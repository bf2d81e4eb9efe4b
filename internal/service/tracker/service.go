package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tracker-golang/internal/export"
	"tracker-golang/internal/ingest"
	"tracker-golang/internal/report"
	"tracker-golang/internal/storage"
)

// ErrNoDataset means a data export or generation step was asked for before
// any work log file was imported.
var ErrNoDataset = errors.New("no work log data loaded")

type HistoryStorage interface {
	SaveImport(ctx context.Context, rec storage.ImportRecord, columns []string, rows []map[string]string) error
	LoadImport(ctx context.Context, id string) ([]string, []map[string]string, error)
	SaveExport(ctx context.Context, rec storage.ExportRecord) error
}

// Service owns the current work log dataset and the running in-memory
// report, one session workbook at a time. The engine itself is stateless;
// all session state lives here behind the mutex.
type Service struct {
	log        *slog.Logger
	history    HistoryStorage
	office     string
	department string

	mu      sync.Mutex
	dataset *ingest.Dataset
	current *report.Report
}

func New(log *slog.Logger, history HistoryStorage, office, department string) *Service {
	return &Service{
		log:        log,
		history:    history,
		office:     office,
		department: department,
	}
}

// Import parses a work log file, makes it the current dataset and records it
// in the import history.
func (s *Service) Import(ctx context.Context, r io.Reader, filename string) (storage.ImportRecord, error) {
	const op = "service.tracker.Import"

	ds, err := ingest.Load(r, filename)
	if err != nil {
		return storage.ImportRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	rec := storage.ImportRecord{
		ID:         uuid.NewString(),
		FileName:   filename,
		RowCount:   len(ds.Rows),
		ImportedAt: time.Now(),
	}
	if err := s.history.SaveImport(ctx, rec, ds.Columns, ds.Rows); err != nil {
		return storage.ImportRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.dataset = ds
	s.mu.Unlock()

	s.log.Info("work log imported", slog.String("file", filename), slog.Int("rows", rec.RowCount))
	return rec, nil
}

// Restore loads a past import back into the session as the current dataset.
func (s *Service) Restore(ctx context.Context, importID string) (*ingest.Dataset, error) {
	const op = "service.tracker.Restore"

	columns, rows, err := s.history.LoadImport(ctx, importID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds := &ingest.Dataset{Columns: columns, Rows: rows}
	s.mu.Lock()
	s.dataset = ds
	s.mu.Unlock()

	return ds, nil
}

// Dataset returns the currently loaded work log, or nil before any import.
func (s *Service) Dataset() *ingest.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// Generate builds a fresh report from the current dataset and replaces the
// running one. Generating without imported data produces an empty template
// with only header sheets and a Total sheet.
func (s *Service) Generate(ctx context.Context, p report.Params) (report.Summary, int, error) {
	const op = "service.tracker.Generate"

	s.fillDefaults(&p)

	s.mu.Lock()
	defer s.mu.Unlock()

	var raw []map[string]string
	if s.dataset != nil {
		raw = s.dataset.Rows
	}

	rep, err := report.Generate(raw, p)
	if err != nil {
		return report.Summary{}, 0, fmt.Errorf("%s: %w", op, err)
	}
	s.current = rep

	s.log.Info("report generated",
		slog.Int("sheets", len(rep.Sheets)),
		slog.Float64("total_hours", rep.Summary.TotalHours))
	return rep.Summary, len(rep.Sheets), nil
}

// Explore generates a report from an additional work log file and merges its
// sheets into the running report. The current dataset is left untouched; the
// new file is still recorded in the import history.
func (s *Service) Explore(ctx context.Context, r io.Reader, filename string, p report.Params) (report.Summary, int, error) {
	const op = "service.tracker.Explore"

	ds, err := ingest.Load(r, filename)
	if err != nil {
		return report.Summary{}, 0, fmt.Errorf("%s: %w", op, err)
	}

	rec := storage.ImportRecord{
		ID:         uuid.NewString(),
		FileName:   filename,
		RowCount:   len(ds.Rows),
		ImportedAt: time.Now(),
	}
	if err := s.history.SaveImport(ctx, rec, ds.Columns, ds.Rows); err != nil {
		return report.Summary{}, 0, fmt.Errorf("%s: %w", op, err)
	}

	s.fillDefaults(&p)

	incoming, err := report.Generate(ds.Rows, p)
	if err != nil {
		return report.Summary{}, 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = report.Merge(s.current, incoming)

	s.log.Info("new sheets merged",
		slog.String("file", filename),
		slog.Int("sheets", len(s.current.Sheets)))
	return s.current.Summary, len(s.current.Sheets), nil
}

// SheetPreview is the lightweight view of one sheet used by the preview tabs.
type SheetPreview struct {
	Name        string       `json:"name"`
	DateRange   string       `json:"date_range"`
	PeriodHours float64      `json:"period_hours"`
	Columns     []string     `json:"columns"`
	Rows        []report.Row `json:"rows"`
}

// Preview exposes the running report for display.
func (s *Service) Preview() ([]SheetPreview, report.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, report.Summary{}, report.ErrNoReport
	}

	previews := make([]SheetPreview, 0, len(s.current.Sheets))
	for _, sheet := range s.current.Sheets {
		previews = append(previews, SheetPreview{
			Name:        sheet.Name,
			DateRange:   sheet.Period.DateRange(),
			PeriodHours: sheet.PeriodHours,
			Columns:     sheet.Columns,
			Rows:        sheet.Rows,
		})
	}
	return previews, s.current.Summary, nil
}

// Refresh drops the session state: dataset and running report.
func (s *Service) Refresh() {
	s.mu.Lock()
	s.dataset = nil
	s.current = nil
	s.mu.Unlock()
	s.log.Info("session refreshed")
}

// ExportExcel renders the running report as an xlsx workbook.
func (s *Service) ExportExcel(ctx context.Context) ([]byte, string, error) {
	const op = "service.tracker.ExportExcel"

	data, err := export.Excel(s.snapshotReport())
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	filename := fmt.Sprintf("Tracker_Report_%s.xlsx", time.Now().Format("2006-01-02_150405"))
	s.recordExport(ctx, "xlsx", filename)
	return data, filename, nil
}

// ExportPDF renders the summary mirror of the running report.
func (s *Service) ExportPDF(ctx context.Context) ([]byte, string, error) {
	const op = "service.tracker.ExportPDF"

	data, err := export.PDF(s.snapshotReport())
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	filename := fmt.Sprintf("Tracker_Report_%s.pdf", time.Now().Format("2006-01-02_150405"))
	s.recordExport(ctx, "pdf", filename)
	return data, filename, nil
}

// ExportCSV writes the current dataset's projected rows; it works off the
// source data directly and needs no generated report.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, string, error) {
	const op = "service.tracker.ExportCSV"

	ds := s.Dataset()
	if ds == nil {
		return nil, "", fmt.Errorf("%s: %w", op, ErrNoDataset)
	}

	data, err := export.CSV(report.ProjectColumns(ds.Columns), report.Project(ds.Rows))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	filename := fmt.Sprintf("Tracker_Data_%s.csv", time.Now().Format("2006-01-02_150405"))
	s.recordExport(ctx, "csv", filename)
	return data, filename, nil
}

// ExportAll writes all three formats into XLSX, PDF and CSV subfolders of
// dir. The three writes run concurrently; the first failure wins.
func (s *Service) ExportAll(ctx context.Context, dir string) (map[string]string, error) {
	const op = "service.tracker.ExportAll"

	type exporter struct {
		format string
		folder string
		run    func(context.Context) ([]byte, string, error)
	}
	exporters := []exporter{
		{"xlsx", "XLSX", s.ExportExcel},
		{"pdf", "PDF", s.ExportPDF},
		{"csv", "CSV", s.ExportCSV},
	}

	var mu sync.Mutex
	paths := make(map[string]string, len(exporters))

	g, ctx := errgroup.WithContext(ctx)
	for _, e := range exporters {
		e := e
		g.Go(func() error {
			data, filename, err := e.run(ctx)
			if err != nil {
				return err
			}
			folder := filepath.Join(dir, e.folder)
			if err := os.MkdirAll(folder, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", folder, err)
			}
			path := filepath.Join(folder, filename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			mu.Lock()
			paths[e.format] = path
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return paths, nil
}

func (s *Service) fillDefaults(p *report.Params) {
	if p.Office == "" {
		p.Office = s.office
	}
	if p.Department == "" {
		p.Department = s.department
	}
}

func (s *Service) snapshotReport() *report.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// recordExport keeps the export history list. A bookkeeping failure never
// fails an export that already produced its bytes.
func (s *Service) recordExport(ctx context.Context, format, filename string) {
	rec := storage.ExportRecord{
		ID:         uuid.NewString(),
		Format:     format,
		FileName:   filename,
		ExportedAt: time.Now(),
	}
	if err := s.history.SaveExport(ctx, rec); err != nil {
		s.log.Warn("failed to record export", slog.String("format", format), slog.String("error", err.Error()))
	}
}
