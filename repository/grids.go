// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/bingo-grid/ids"
	"github.com/danielhkuo/bingo-grid/models"
)

var ErrInvalidGrid = errors.New("cell count does not match grid size")

type GridRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewGridRepository(db *sql.DB) *GridRepository {
	return &GridRepository{db: db, now: time.Now}
}

// Create stores a grid and its cells in one transaction and returns the new
// grid id. Cell i gets position i. On any failure nothing is persisted.
func (r *GridRepository) Create(ctx context.Context, size int, texts []string) (string, error) {
	if len(texts) != size*size {
		return "", fmt.Errorf("%w: size %d needs %d cells, got %d", ErrInvalidGrid, size, size*size, len(texts))
	}

	gridID := ids.New()
	// Postgres keeps microseconds; truncating makes reads match writes
	now := r.now().UTC().Truncate(time.Microsecond)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bingo_grids (id, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, gridID, size, now, now)
	if err != nil {
		return "", fmt.Errorf("failed to insert grid: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO bingo_cells (id, grid_id, text, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare cell insert: %w", err)
	}
	defer stmt.Close()

	for i, text := range texts {
		if _, err := stmt.ExecContext(ctx, ids.New(), gridID, text, i, now, now); err != nil {
			return "", fmt.Errorf("failed to insert cell %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit grid: %w", err)
	}

	return gridID, nil
}

// GetByID loads a grid with its cells in position order. found is false,
// with a nil error, when no grid has that id.
func (r *GridRepository) GetByID(ctx context.Context, id string) (grid *models.Grid, found bool, err error) {
	var g models.Grid
	err = r.db.QueryRowContext(ctx, `
		SELECT id, size, created_at
		FROM bingo_grids
		WHERE id = $1
	`, id).Scan(&g.ID, &g.Size, &g.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to query grid: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, position
		FROM bingo_cells
		WHERE grid_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cells: %w", err)
	}
	defer rows.Close()

	g.Cells = make([]models.Cell, 0, g.Size*g.Size)
	for rows.Next() {
		var c models.Cell
		if err := rows.Scan(&c.ID, &c.Text, &c.Position); err != nil {
			return nil, false, fmt.Errorf("failed to scan cell: %w", err)
		}
		g.Cells = append(g.Cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to read cells: %w", err)
	}

	g.CreatedAt = g.CreatedAt.UTC()
	return &g, true, nil
}

// Exists checks the grid row only.
func (r *GridRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM bingo_grids WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check grid: %w", err)
	}
	return true, nil
}

// Ping reports whether the store answers.
func (r *GridRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
