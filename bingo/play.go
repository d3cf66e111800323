// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bingo

// Click applies one click on the cell at position and returns the new
// state vector. Clicking a Validated cell clears it and downgrades the
// lines it belonged to. Out-of-range positions leave the states unchanged.
func Click(size int, states []CellState, position int) []CellState {
	next := clone(states)
	if position < 0 || position >= len(next) {
		return next
	}

	switch next[position] {
	case Validated:
		next[position] = None
		return Downgrade(size, next)
	case Selected:
		next[position] = None
	default:
		next[position] = Selected
	}
	return next
}

// CheckAndValidate validates every complete line that still holds a
// Selected cell. found reports whether any such line existed.
func CheckAndValidate(size int, states []CellState) (next []CellState, found bool) {
	next = clone(states)
	if len(states) != size*size {
		return next, false
	}

	for _, line := range Lines(size) {
		if !lineComplete(line, states) || !lineHasSelected(line, states) {
			continue
		}
		found = true
		for _, pos := range line {
			next[pos] = Validated
		}
	}
	return next, found
}

// Downgrade demotes every Validated cell to Selected, then validates again
// each line that is still complete. Lines untouched by a cleared cell stay
// validated; lines that lost a cell fall back to Selected.
func Downgrade(size int, states []CellState) []CellState {
	next := clone(states)
	if len(states) != size*size {
		return next
	}

	for i, s := range next {
		if s == Validated {
			next[i] = Selected
		}
	}

	demoted := clone(next)
	for _, line := range Lines(size) {
		if !lineComplete(line, demoted) {
			continue
		}
		for _, pos := range line {
			next[pos] = Validated
		}
	}
	return next
}

// HasNewLine reports whether CheckAndValidate would find a line.
func HasNewLine(size int, states []CellState) bool {
	if len(states) != size*size {
		return false
	}
	for _, line := range Lines(size) {
		if lineComplete(line, states) && lineHasSelected(line, states) {
			return true
		}
	}
	return false
}

// CompleteLines counts lines whose cells are all Validated.
func CompleteLines(size int, states []CellState) int {
	if len(states) != size*size {
		return 0
	}
	n := 0
	for _, line := range Lines(size) {
		done := true
		for _, pos := range line {
			if states[pos] != Validated {
				done = false
				break
			}
		}
		if done {
			n++
		}
	}
	return n
}

func clone(states []CellState) []CellState {
	out := make([]CellState, len(states))
	copy(out, states)
	return out
}
