// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bingo holds the play rules for a bingo grid.

Everything here is a pure function of the grid size and a state vector.
Nothing is persisted: play state lives with whoever renders the grid and is
thrown away on reload.

# Positions

Cells are addressed by position in row-major order:

	row = position / size
	col = position % size

A state vector has one CellState per position, so states[i] is the state of
the cell at position i.

# Lines

A grid of size S has 2S+2 lines:

	S rows, S columns, the main diagonal, the anti-diagonal

Every position is on exactly one row and one column. Diagonal positions
are on 3 lines, and the center of an odd grid is on 4.

# Cell States

	None      → click → Selected
	Selected  → click → None
	Validated → click → None, then Downgrade for the rest of the grid

The only way into Validated is CheckAndValidate.

# Check and Validate

CheckAndValidate validates every line that is complete (all cells Selected
or Validated) and still has at least one Selected cell:

	next, found := bingo.CheckAndValidate(size, states)
	if found {
		// BINGO! You got a line!
	}

Running it again without new selections changes nothing and reports false.

# Free Space

The center of an odd grid is the free space. It is a display convention
only: IsFreeSpace tells renderers and editors which cell may be left blank.
*/
package bingo
