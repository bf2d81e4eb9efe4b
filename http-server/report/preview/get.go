package preview

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tracker-golang/internal/report"
	"tracker-golang/internal/service/tracker"
)

type ReportPreviewer interface {
	Preview() ([]tracker.SheetPreview, report.Summary, error)
}

// GetPreview returns the running report's sheets and summary for display.
func GetPreview(log *slog.Logger, previewer ReportPreviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sheets, summary, err := previewer.Preview()
		if err != nil {
			if errors.Is(err, report.ErrNoReport) {
				http.Error(w, "no report generated", http.StatusNotFound)
				return
			}
			log.Error("failed to build preview", slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"sheets":  sheets,
			"summary": summary,
		})
	}
}
