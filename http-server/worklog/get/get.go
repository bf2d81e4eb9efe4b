package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tracker-golang/internal/ingest"
)

type DatasetProvider interface {
	Dataset() *ingest.Dataset
	Restore(ctx context.Context, importID string) (*ingest.Dataset, error)
}

// GetWorkLog returns the currently loaded dataset as raw tabular JSON.
func GetWorkLog(log *slog.Logger, provider DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := provider.Dataset()
		if ds == nil {
			http.Error(w, "no work log loaded", http.StatusNotFound)
			return
		}

		render.JSON(w, r, ds)
	}
}

// RestoreWorkLog reloads a past import, by history id, as the current dataset.
func RestoreWorkLog(log *slog.Logger, provider DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.worklog.RestoreWorkLog"

		importID := chi.URLParam(r, "id")
		if importID == "" {
			http.Error(w, "missing import id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		ds, err := provider.Restore(ctx, importID)
		if err != nil {
			log.Error("failed to restore import", slog.String("op", op), slog.String("import_id", importID), slog.String("error", err.Error()))
			http.Error(w, "failed to restore import", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ds)
	}
}
