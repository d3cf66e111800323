// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/danielhkuo/bingo-grid/cliparse"
	"github.com/danielhkuo/bingo-grid/ids"
	"github.com/danielhkuo/bingo-grid/middleware"
	"github.com/danielhkuo/bingo-grid/models"
)

var gridsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bingo_grids_created_total",
	Help: "Grids successfully created, by size.",
}, []string{"size"})

// GridStore is the persistence the grid handlers need.
type GridStore interface {
	Create(ctx context.Context, size int, texts []string) (string, error)
	GetByID(ctx context.Context, id string) (*models.Grid, bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type GridHandler struct {
	store GridStore
	cfg   cliparse.Config
}

func NewGridHandler(store GridStore, cfg cliparse.Config) *GridHandler {
	return &GridHandler{store: store, cfg: cfg}
}

// CreateGrid handles POST /grids
func (h *GridHandler) CreateGrid(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGridRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		reqErr := invalidInput()
		middleware.CodedErrorResponse(w, http.StatusBadRequest, reqErr.Code, reqErr.Message)
		return
	}

	texts, reqErr := ValidateCreateRequest(req)
	if reqErr != nil {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, reqErr.Code, reqErr.Message)
		return
	}

	size := *req.Size
	gridID, err := h.store.Create(r.Context(), size, texts)
	if err != nil {
		slog.Error("failed to create grid", "error", err, "size", size, "dialect", h.cfg.DatabaseType)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, models.CodeInternal, "Internal server error")
		return
	}

	gridsCreated.WithLabelValues(strconv.Itoa(size)).Inc()
	slog.Info("grid created", "grid_id", gridID, "size", size)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateGridResponse{
		ID:      gridID,
		Message: models.MessageGridCreated,
	})
}

// GetGrid handles GET /grids/{id}
func (h *GridHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	gridID, ok := pathGridID(w, r)
	if !ok {
		return
	}

	grid, found, err := h.store.GetByID(r.Context(), gridID)
	if err != nil {
		slog.Error("failed to get grid", "error", err, "grid_id", gridID, "dialect", h.cfg.DatabaseType)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, models.CodeInternal, "Internal server error")
		return
	}
	if !found {
		slog.Info("grid not found", "grid_id", gridID)
		middleware.CodedErrorResponse(w, http.StatusNotFound, models.CodeNotFound, "Bingo grid not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, grid)
}

// GridExists handles GET /grids/{id}/exists
func (h *GridHandler) GridExists(w http.ResponseWriter, r *http.Request) {
	gridID, ok := pathGridID(w, r)
	if !ok {
		return
	}

	exists, err := h.store.Exists(r.Context(), gridID)
	if err != nil {
		slog.Error("failed to check grid", "error", err, "grid_id", gridID, "dialect", h.cfg.DatabaseType)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, models.CodeInternal, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ExistsResponse{Exists: exists})
}

// pathGridID validates the {id} path value, writing a 400 when it is malformed
func pathGridID(w http.ResponseWriter, r *http.Request) (string, bool) {
	gridID, err := ids.Validate(r.PathValue("id"))
	if err != nil {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeInvalidID, "Invalid grid ID format")
		return "", false
	}
	return gridID, true
}
