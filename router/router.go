// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/bingo-grid/cliparse"
	"github.com/danielhkuo/bingo-grid/handlers"
	"github.com/danielhkuo/bingo-grid/middleware"
	"github.com/danielhkuo/bingo-grid/repository"
)

// APIPrefix is where the grid routes are mounted in addition to the root.
const APIPrefix = "/api/bingo"

// Banner is the body of GET /
const Banner = "bingo-grid API v1"

const healthTimeout = 2 * time.Second

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	grids := repository.NewGridRepository(db)
	gridHandler := handlers.NewGridHandler(grids, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := grids.Ping(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	// Grid operations, at the root and under the API prefix
	for _, prefix := range []string{"", APIPrefix} {
		mux.HandleFunc("POST "+prefix+"/grids", wrap(gridHandler.CreateGrid))
		mux.HandleFunc("GET "+prefix+"/grids/{id}", wrap(gridHandler.GetGrid))
		mux.HandleFunc("GET "+prefix+"/grids/{id}/exists", wrap(gridHandler.GridExists))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return middleware.CORS(cfg.CORSOrigin, mux)
}

func wrap(h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithLogging(middleware.WithMetrics(h))
}
