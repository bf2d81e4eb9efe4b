package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tracker-golang/internal/storage"
)

type HistoryProvider interface {
	ImportHistory(ctx context.Context) ([]storage.ImportRecord, error)
	ExportHistory(ctx context.Context) ([]storage.ExportRecord, error)
}

func GetImportHistory(log *slog.Logger, provider HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.GetImportHistory"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := provider.ImportHistory(ctx)
		if err != nil {
			log.Error("failed to load import history", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, records)
	}
}

func GetExportHistory(log *slog.Logger, provider HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.GetExportHistory"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := provider.ExportHistory(ctx)
		if err != nil {
			log.Error("failed to load export history", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, records)
	}
}
