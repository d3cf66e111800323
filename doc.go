// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Bingo Grid API server.

Bingo Grid stores immutable bingo cards (2x2 up to 5x5 cells of free text)
and serves them back by id. Playing a card happens entirely on the client;
see the bingo, tui and cmd/bingo packages.

# Starting the Server

Settings come from flags, the environment, or a .env file:

	DATABASE_URL=postgres://... go run .

Or with flags, against an embedded SQLite file:

	go run . -p 3001 -t sqlite -d ./bingo.db

# Configuration

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DATABASE_URL (-d): Connection string, or SQLite file path
  - DB_USER, DB_HOST, DB_NAME, DB_PASSWORD, DB_PORT: Postgres parts used
    when DATABASE_URL is empty
  - DB_IDLE_TIMEOUT, DB_CONNECT_TIMEOUT: Pool timeouts (30s, 2s)
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - CORS_ORIGIN (-cors-origin): Fixed allowed origin

# Architecture

  - handlers: Grid API request validation and responses
  - repository: Transactional grid storage
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response types
  - ids: Grid id generation and validation
  - db: Pool opening and schema creation
  - cliparse: Configuration parsing

SIGINT and SIGTERM drain in-flight requests for up to five seconds.
*/
package main
