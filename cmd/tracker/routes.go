package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	export_report "tracker-golang/http-server/export-report"
	generate_report "tracker-golang/http-server/generate-report"
	delete_history "tracker-golang/http-server/history/delete"
	gethistory "tracker-golang/http-server/history/get"
	"tracker-golang/http-server/report/preview"
	"tracker-golang/http-server/session/refresh"
	getworklog "tracker-golang/http-server/worklog/get"
	"tracker-golang/http-server/worklog/upload"
	"tracker-golang/internal/config"
	"tracker-golang/internal/middleware/auth"
	"tracker-golang/internal/service/tracker"
	"tracker-golang/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, store *mysql.Storage, svc *tracker.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Work log dataset
	router.Post("/api/worklog", upload.ImportWorkLog(log, svc))
	router.Get("/api/worklog", getworklog.GetWorkLog(log, svc))
	router.Post("/api/worklog/restore/{id}", getworklog.RestoreWorkLog(log, svc))

	// Report generation and preview
	router.Post("/api/report/generate", generate_report.GenerateReport(log, svc))
	router.Post("/api/report/explore", generate_report.ExploreNewSheet(log, svc))
	router.Get("/api/report/preview", preview.GetPreview(log, svc))

	// Exports
	router.Get("/api/export/excel", export_report.ExportExcel(log, svc))
	router.Get("/api/export/pdf", export_report.ExportPDF(log, svc))
	router.Get("/api/export/csv", export_report.ExportCSV(log, svc))
	router.Post("/api/export/all", export_report.ExportAll(log, svc))

	// Bookkeeping
	router.Get("/api/history/imports", gethistory.GetImportHistory(log, store))
	router.Get("/api/history/exports", gethistory.GetExportHistory(log, store))
	router.Post("/api/session/refresh", refresh.RefreshSession(log, svc))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Delete("/history/imports", delete_history.DeleteImportHistory(log, store))
	adminRouter.Delete("/history/exports", delete_history.DeleteExportHistory(log, store))
	router.Mount("/api/admin", adminRouter)

	return router
}
