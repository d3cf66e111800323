// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package repository reads and writes bingo grids.

# Create

Create writes the grid row and all of its cells in one transaction:

	gridID, err := repo.Create(ctx, 3, texts)

Cell i is stored at position i. If any insert fails the transaction is
rolled back and the error is returned; a grid is never visible with a
partial cell set. Nothing is retried.

# Read

GetByID does two reads, the grid row then its cells ordered by position:

	grid, found, err := repo.GetByID(ctx, id)
	if err != nil {
		// store error
	}
	if !found {
		// no such grid
	}

Exists looks at the grid row only.

Reads run outside a transaction. Grids are written once and never updated,
so there is nothing to race with.
*/
package repository
