package generate_report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"tracker-golang/internal/report"
)

type SheetExplorer interface {
	Explore(ctx context.Context, r io.Reader, filename string, p report.Params) (report.Summary, int, error)
}

// ExploreNewSheet takes an additional work log upload plus generation
// parameters as form fields, and merges the resulting sheets into the running
// report.
func ExploreNewSheet(log *slog.Logger, explorer SheetExplorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.ExploreNewSheet"

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file upload", http.StatusBadRequest)
			return
		}
		defer file.Close()

		cutoffDays, _ := strconv.Atoi(r.FormValue("cutoff_days"))
		hourlyRate, _ := strconv.ParseFloat(r.FormValue("hourly_rate"), 64)
		req := generateRequest{
			StartDate:  r.FormValue("start_date"),
			EndDate:    r.FormValue("end_date"),
			CutoffDays: cutoffDays,
			HourlyRate: hourlyRate,
			Employee:   r.FormValue("employee_name"),
			Department: r.FormValue("department"),
			Office:     r.FormValue("office"),
		}
		p, err := req.toParams()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		summary, sheets, err := explorer.Explore(ctx, file, header.Filename, p)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, report.ErrInvalidRange) ||
				errors.Is(err, report.ErrInvalidCutoff) ||
				errors.Is(err, report.ErrInvalidRate) ||
				errors.Is(err, report.ErrEmptyEmployee) {
				status = http.StatusBadRequest
			}
			log.Error("failed to merge new sheets", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), status)
			return
		}

		render.JSON(w, r, generateResponse{Sheets: sheets, Summary: summary})
	}
}
