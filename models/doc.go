// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateGridRequest: size, cells
  - CellInput: text (one element of cells)

CreateGridRequest carries validator tags; see handlers.ValidateCreateRequest
for the order in which they are checked.

# Response Types

Types for JSON responses:

  - CreateGridResponse: id, message
  - ExistsResponse: exists
  - ErrorResponse: error, message, code

# Domain Types

  - Grid: id, size, cells, createdAt
  - Cell: id, text (position is the index in Grid.Cells)

# Error Codes

ErrorResponse.Code separates failures that share a status:

	invalid_input        400  body shape is wrong
	size_out_of_range    400  size not in 2..5
	cell_count_mismatch  400  len(cells) != size*size
	invalid_cell         400  a cell has no string text
	invalid_id           400  id is not a UUID
	not_found            404  no grid with that id
	internal_error       500  store failure
*/
package models
