// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/bingo-grid/cliparse"
)

// Open connects to the configured store, applies the pool settings and
// verifies the connection within cfg.ConnectTimeout.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver, dsn := "postgres", cfg.DSN()
	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		driver, dsn = "sqlite", SQLiteDSN(dsn)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = cliparse.PoolSize
	}
	conn.SetMaxOpenConns(poolSize)
	conn.SetMaxIdleConns(poolSize)
	conn.SetConnMaxIdleTime(cfg.IdleTimeout)

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DatabaseType, err)
	}

	return conn, nil
}

// SQLiteDSN turns a file path (or file: URI) into a DSN with foreign keys
// enforced and times stored in a format the driver parses back.
func SQLiteDSN(path string) string {
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}
