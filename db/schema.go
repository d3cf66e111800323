// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/bingo-grid/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case cliparse.DatabasePostgres:
		ddl = postgresSchema
	case cliparse.DatabaseSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("no schema for database type %q", dialect)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Grids
CREATE TABLE IF NOT EXISTS bingo_grids (
    id UUID PRIMARY KEY,
    size INTEGER NOT NULL CHECK (size BETWEEN 2 AND 5),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Cells
CREATE TABLE IF NOT EXISTS bingo_cells (
    id UUID PRIMARY KEY,
    grid_id UUID NOT NULL REFERENCES bingo_grids(id) ON DELETE CASCADE,
    text TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL CHECK (position >= 0),
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bingo_cells_grid_id ON bingo_cells(grid_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_bingo_cells_position ON bingo_cells(grid_id, position);
`

// SQLite has no UUID or TIMESTAMPTZ; ids are TEXT and times are written
// by the application in a round-trippable format (see SQLiteDSN).
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS bingo_grids (
    id TEXT PRIMARY KEY,
    size INTEGER NOT NULL CHECK (size BETWEEN 2 AND 5),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS bingo_cells (
    id TEXT PRIMARY KEY,
    grid_id TEXT NOT NULL REFERENCES bingo_grids(id) ON DELETE CASCADE,
    text TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL CHECK (position >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bingo_cells_grid_id ON bingo_cells(grid_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_bingo_cells_position ON bingo_cells(grid_id, position);
`
