package export_report

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tracker-golang/internal/report"
	"tracker-golang/internal/service/tracker"
)

type ReportExporter interface {
	ExportExcel(ctx context.Context) ([]byte, string, error)
	ExportPDF(ctx context.Context) ([]byte, string, error)
	ExportCSV(ctx context.Context) ([]byte, string, error)
	ExportAll(ctx context.Context, dir string) (map[string]string, error)
}

const exportTimeout = 30 * time.Second

// ExportExcel streams the report workbook as an xlsx download.
func ExportExcel(log *slog.Logger, exporter ReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export-report.ExportExcel"

		ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
		defer cancel()

		data, filename, err := exporter.ExportExcel(ctx)
		if err != nil {
			writeExportError(w, log, op, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.Write(data)
	}
}

// ExportPDF streams the summary report as a PDF download.
func ExportPDF(log *slog.Logger, exporter ReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export-report.ExportPDF"

		ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
		defer cancel()

		data, filename, err := exporter.ExportPDF(ctx)
		if err != nil {
			writeExportError(w, log, op, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.Write(data)
	}
}

// ExportCSV streams the raw projected dataset as a CSV download.
func ExportCSV(log *slog.Logger, exporter ReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export-report.ExportCSV"

		ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
		defer cancel()

		data, filename, err := exporter.ExportCSV(ctx)
		if err != nil {
			writeExportError(w, log, op, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		w.Write(data)
	}
}

// ExportAll writes all three formats into the requested directory on the
// server host and returns the written paths.
func ExportAll(log *slog.Logger, exporter ReportExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export-report.ExportAll"

		var req struct {
			Dir string `json:"dir"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Dir == "" {
			http.Error(w, "missing target dir", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
		defer cancel()

		paths, err := exporter.ExportAll(ctx, req.Dir)
		if err != nil {
			writeExportError(w, log, op, err)
			return
		}

		render.JSON(w, r, paths)
	}
}

func writeExportError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if errors.Is(err, report.ErrNoReport) || errors.Is(err, tracker.ErrNoDataset) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	log.Error("export failed", slog.String("op", op), slog.String("error", err.Error()))
	http.Error(w, "export failed", http.StatusInternalServerError)
}
