package refresh

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type SessionRefresher interface {
	Refresh()
}

// RefreshSession drops the loaded dataset and the running report.
func RefreshSession(log *slog.Logger, refresher SessionRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresher.Refresh()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "refreshed"})
	}
}
