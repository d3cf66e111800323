// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bingo

// Lines returns every winning line of a size x size grid as lists of
// positions: rows first, then columns, then the main and anti diagonals.
func Lines(size int) [][]int {
	if size <= 0 {
		return nil
	}

	lines := make([][]int, 0, 2*size+2)

	// Rows
	for row := 0; row < size; row++ {
		line := make([]int, size)
		for col := 0; col < size; col++ {
			line[col] = row*size + col
		}
		lines = append(lines, line)
	}

	// Columns
	for col := 0; col < size; col++ {
		line := make([]int, size)
		for row := 0; row < size; row++ {
			line[row] = row*size + col
		}
		lines = append(lines, line)
	}

	diag := make([]int, size)
	anti := make([]int, size)
	for i := 0; i < size; i++ {
		diag[i] = i*size + i
		anti[i] = i*size + (size - 1 - i)
	}
	lines = append(lines, diag, anti)

	return lines
}

// IsFreeSpace reports whether position is the free center of an odd grid.
// Even grids have no free space.
func IsFreeSpace(size, position int) bool {
	if size%2 == 0 {
		return false
	}
	return position == size*size/2
}

// DisplayText is the label a player sees for a cell. An empty free space
// reads "FREE".
func DisplayText(size, position int, text string) string {
	if text == "" && IsFreeSpace(size, position) {
		return "FREE"
	}
	return text
}

func lineComplete(line []int, states []CellState) bool {
	for _, pos := range line {
		if !states[pos].marked() {
			return false
		}
	}
	return true
}

func lineHasSelected(line []int, states []CellState) bool {
	for _, pos := range line {
		if states[pos] == Selected {
			return true
		}
	}
	return false
}
