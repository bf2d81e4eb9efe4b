package generate_report

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tracker-golang/internal/report"
)

type ReportGenerator interface {
	Generate(ctx context.Context, p report.Params) (report.Summary, int, error)
}

// GenerateReport builds a fresh report from the current dataset and the
// posted generation parameters.
func GenerateReport(log *slog.Logger, gen ReportGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReport"

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		p, err := req.toParams()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		summary, sheets, err := gen.Generate(ctx, p)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, report.ErrInvalidRange) ||
				errors.Is(err, report.ErrInvalidCutoff) ||
				errors.Is(err, report.ErrInvalidRate) ||
				errors.Is(err, report.ErrEmptyEmployee) {
				status = http.StatusBadRequest
			}
			log.Error("failed to generate report", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), status)
			return
		}

		render.JSON(w, r, generateResponse{Sheets: sheets, Summary: summary})
	}
}
