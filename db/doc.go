// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the grid store and creates its schema.

# Opening

Open picks the driver from cfg.DatabaseType and applies the pool settings:

	conn, err := db.Open(ctx, cfg)

  - postgres: github.com/lib/pq, DSN from cliparse.Config.DSN
  - sqlite: modernc.org/sqlite, DSN from SQLiteDSN (foreign keys on)

The pool holds at most cliparse.PoolSize connections; idle ones are closed
after cfg.IdleTimeout. Open fails if the store does not answer a ping
within cfg.ConnectTimeout.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - bingo_grids: id, size (2..5), created_at, updated_at
  - bingo_cells: id, grid_id, text (default ''), position, created_at, updated_at

# Relationships

	bingo_grids 1──* bingo_cells

bingo_cells.grid_id uses ON DELETE CASCADE.

# Indexes

  - bingo_cells.grid_id
  - bingo_cells.(grid_id, position) (unique)
*/
package db
