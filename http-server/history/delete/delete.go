package delete_history

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type HistoryWiper interface {
	DeleteImportHistory(ctx context.Context) error
	DeleteExportHistory(ctx context.Context) error
}

// DeleteImportHistory wipes all stored imports; admin only.
func DeleteImportHistory(log *slog.Logger, wiper HistoryWiper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.DeleteImportHistory"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := wiper.DeleteImportHistory(ctx); err != nil {
			log.Error("failed to wipe import history", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
	}
}

// DeleteExportHistory wipes the export history; admin only.
func DeleteExportHistory(log *slog.Logger, wiper HistoryWiper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.history.DeleteExportHistory"

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := wiper.DeleteExportHistory(ctx); err != nil {
			log.Error("failed to wipe export history", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
	}
}
