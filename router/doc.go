// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Bingo Grid API.

# Route Registration

NewRouter builds the route table and wraps it in CORS:

	handler := router.NewRouter(db, cfg)

# Endpoints

Service:

	GET /health  - "OK" after a database ping, 503 otherwise
	GET /metrics - Prometheus metrics
	GET /        - Banner

Grids, mounted at the root and again under /api/bingo:

	POST /grids             - Create grid
	GET  /grids/{id}        - Get grid with cells in position order
	GET  /grids/{id}/exists - Check existence

Grid routes are logged and counted by middleware.WithLogging and
middleware.WithMetrics.
*/
package router
