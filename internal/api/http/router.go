// Package http serves the operational side port: Prometheus metrics and a
// health probe.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

const pingTimeout = 2 * time.Second

// StatsSource reports registry counts.
type StatsSource interface {
	Stats(ctx context.Context) model.Stats
}

type healthResponse struct {
	Status        string `json:"status"`
	Entries       int    `json:"entries"`
	ReportedToday int    `json:"reported_today"`
	Error         string `json:"error,omitempty"`
}

// NewRouter builds the side-port routes. store may be nil when the backend
// has nothing to ping.
func NewRouter(gatherer prometheus.Gatherer, stats StatsSource, store model.HealthChecker, logger *logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", healthz(stats, store, logger))

	return r
}

func healthz(stats StatsSource, store model.HealthChecker, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := stats.Stats(r.Context())
		resp := healthResponse{Status: "ok", Entries: s.Total, ReportedToday: s.ReportedToday}
		code := http.StatusOK

		if store != nil {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()

			if err := store.Ping(ctx); err != nil {
				logger.Warn("health check failed",
					"request_id", middleware.GetReqID(r.Context()),
					"error", err)
				resp.Status = "unavailable"
				resp.Error = err.Error()
				code = http.StatusServiceUnavailable
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
