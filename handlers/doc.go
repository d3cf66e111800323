// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Bingo Grid API.

# Handler Types

GridHandler serves all grid endpoints. It depends on a GridStore (the
repository) and the server Config:

	gridHandler := handlers.NewGridHandler(repository.NewGridRepository(db), cfg)

# Endpoints

	POST /grids             → CreateGrid (201 {id, message})
	GET  /grids/{id}        → GetGrid (200 {id, size, cells, createdAt})
	GET  /grids/{id}/exists → GridExists (200 {exists})

# Create Validation

ValidateCreateRequest runs four checks in order, the first failure wins:

	1. size and cells present       → 400 invalid_input
	2. 2 <= size <= 5               → 400 size_out_of_range
	3. len(cells) == size*size      → 400 cell_count_mismatch
	4. every cell has a string text → 400 invalid_cell (first bad index)

The store is not touched unless all four pass.

# Id Validation

GetGrid and GridExists reject a malformed {id} with 400 invalid_id before
any store access. An unknown but well-formed id gives 404 from GetGrid and
{"exists": false} from GridExists.

# Errors

Store failures are logged and answered with an opaque 500; the response
never carries the underlying error.
*/
package handlers
