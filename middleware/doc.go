// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /grids", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms).

# Metrics

WithMetrics counts requests and observes latency, labelled by the matched
route pattern rather than the raw path:

	bingo_http_requests_total{method, route, status}
	bingo_http_request_duration_seconds{method, route}

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

An empty origin echoes the request's Origin header (or "*" when absent).
Credentials are only allowed for a concrete origin.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.CodedErrorResponse(w, http.StatusBadRequest, models.CodeInvalidID, "Invalid grid ID format")

ParseJSONBody decodes at most MaxBodyBytes of the request body.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP before falling back to RemoteAddr.
*/
package middleware
