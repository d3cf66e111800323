// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a typed HTTP client for the Bingo Grid API.

	c, err := client.New("http://localhost:3001", client.WithTimeout(5*time.Second))
	id, err := c.CreateGrid(ctx, 3, texts)
	grid, err := c.GetGrid(ctx, id)

Non-2xx answers are returned as *APIError; use IsNotFound and IsInvalid to
tell them apart. Malformed ids are rejected locally with ids.ErrInvalidID
before any request is sent. Requests are never retried.
*/
package client
