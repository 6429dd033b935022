/**
 * @description
 * This file sets up the HTTP router for the dashboard backend. It defines the
 * API endpoints, associates them with their corresponding handlers, and
 * applies middleware for request identification, logging, panic recovery,
 * timeouts, CORS and metrics.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 * - github.com/go-chi/cors: CORS middleware for the frontend origin.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yayadash/transaction-dashboard/internal/metrics"
)

// Routes creates and returns the router for the dashboard backend.
// frontendOrigin is the origin allowed by CORS; m may be nil to disable
// metric recording while keeping the routes identical.
func Routes(h *TransactionHandlers, m *metrics.Metrics, frontendOrigin string) http.Handler {
	r := chi.NewRouter()

	// Standard middleware for request identity, logging, panic recovery and timeouts.
	r.Use(RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(h.NotFoundHandler)

	r.With(metrics.HTTPMiddleware(m, "/health")).Get("/health", h.HealthHandler)
	r.With(metrics.HTTPMiddleware(m, "/transactions")).Get("/transactions", h.ListTransactionsHandler)
	r.With(metrics.HTTPMiddleware(m, "/transactions/search")).Post("/transactions/search", h.SearchTransactionsHandler)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
