// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Flags fall back to environment variables, then to defaults:

	-p               PORT                3001
	-t               DATABASE_TYPE       postgres (or sqlite)
	-d               DATABASE_URL        built from the db-* settings
	-db-user         DB_USER             bingo
	-db-host         DB_HOST             localhost
	-db-name         DB_NAME             bingo_db
	-db-password     DB_PASSWORD         password
	-db-port         DB_PORT             5432
	-idle-timeout    DB_IDLE_TIMEOUT     30s
	-connect-timeout DB_CONNECT_TIMEOUT  2s
	-log-level       LOG_LEVEL           info
	-cors-origin     CORS_ORIGIN         request origin

CLI flags take precedence over environment variables. The pool size is
fixed at PoolSize (20).

# Validation

ParseFlags returns an error for unparsable numbers or durations, an unknown
database type, a sqlite database without a path, or an unknown log level.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(ctx, cfg)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
