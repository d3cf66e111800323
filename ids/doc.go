// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids generates and validates grid and cell identifiers.

Grid and cell ids are random UUIDs:

	gridID := ids.New()

Ids arriving in a URL are checked before any store access:

	id, err := ids.Validate(r.PathValue("id"))
	if err != nil {
		// 400 Invalid grid ID format
	}

Only the canonical 36 character form is accepted. The returned id is lower
case so lookups match what New stored.
*/
package ids
