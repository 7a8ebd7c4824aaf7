package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/program-finder/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func Setup(h *handler.Handler, log *zap.Logger, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(middleware.Timeout(timeout))

	// Routes
	r.Get("/health", healthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/questions", h.Questions)
	r.Get("/programs", h.Programs)
	r.Get("/programs/{programID}", h.Program)

	r.Post("/recommendations", h.Recommend)
	r.Post("/recommendations/batch", h.RecommendBatch)

	r.Post("/admin/catalog/reload", h.ReloadCatalog)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
