// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bingo

import "fmt"

// Grid size bounds
const (
	MinSize     = 2
	MaxSize     = 5
	DefaultSize = 5
)

// CellState is the play marking of one cell.
type CellState int

const (
	None CellState = iota
	Selected
	Validated
)

func (s CellState) String() string {
	switch s {
	case None:
		return "NONE"
	case Selected:
		return "SELECTED"
	case Validated:
		return "VALIDATED"
	}
	return fmt.Sprintf("CellState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *CellState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "NONE":
		*s = None
	case "SELECTED":
		*s = Selected
	case "VALIDATED":
		*s = Validated
	default:
		return fmt.Errorf("unknown cell state %q", string(b))
	}
	return nil
}

// marked reports whether the cell counts towards a complete line.
func (s CellState) marked() bool {
	return s == Selected || s == Validated
}

// ValidSize reports whether size is an allowed grid size.
func ValidSize(size int) bool {
	return size >= MinSize && size <= MaxSize
}

// NewStates returns a fresh state vector with every cell None.
func NewStates(size int) []CellState {
	return make([]CellState, size*size)
}
