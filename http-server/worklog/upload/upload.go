package upload

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"tracker-golang/internal/storage"
)

type WorkLogImporter interface {
	Import(ctx context.Context, r io.Reader, filename string) (storage.ImportRecord, error)
}

// ImportWorkLog accepts a multipart upload of a work log file (txt/csv/xlsx)
// and makes it the current dataset.
func ImportWorkLog(log *slog.Logger, importer WorkLogImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.worklog.ImportWorkLog"

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file upload", http.StatusBadRequest)
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		rec, err := importer.Import(ctx, file, header.Filename)
		if err != nil {
			log.Error("failed to import work log", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "failed to import work log", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, rec)
	}
}
