// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bingo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statesWith returns a size x size vector with the given positions set to s
func statesWith(size int, s CellState, positions ...int) []CellState {
	states := NewStates(size)
	for _, p := range positions {
		states[p] = s
	}
	return states
}

func TestClick_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		from     CellState
		expected CellState
	}{
		{"none to selected", None, Selected},
		{"selected to none", Selected, None},
		{"validated to none", Validated, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := statesWith(3, tt.from, 4)
			next := Click(3, states, 4)
			assert.Equal(t, tt.expected, next[4])
			assert.Equal(t, tt.from, states[4], "input must not be mutated")
		})
	}
}

func TestClick_OutOfRange(t *testing.T) {
	states := statesWith(2, Selected, 0)
	for _, pos := range []int{-1, 4, 100} {
		next := Click(2, states, pos)
		assert.Empty(t, cmp.Diff(states, next), "position %d", pos)
	}
}

func TestClick_NeverValidates(t *testing.T) {
	states := NewStates(2)
	states = Click(2, states, 0)
	states = Click(2, states, 1)
	// row 0 is complete but only CheckAndValidate may validate it
	assert.Equal(t, []CellState{Selected, Selected, None, None}, states)
}

func TestCheckAndValidate_TopRow(t *testing.T) {
	states := statesWith(3, Selected, 0, 1, 2)

	next, found := CheckAndValidate(3, states)
	require.True(t, found)

	expected := statesWith(3, Validated, 0, 1, 2)
	if diff := cmp.Diff(expected, next); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}

	// A second run with no new selections finds nothing and changes nothing
	again, found := CheckAndValidate(3, next)
	assert.False(t, found)
	assert.Empty(t, cmp.Diff(next, again))
}

func TestCheckAndValidate_NoLine(t *testing.T) {
	states := statesWith(3, Selected, 0, 1, 5)

	next, found := CheckAndValidate(3, states)
	assert.False(t, found)
	assert.Empty(t, cmp.Diff(states, next))
}

func TestCheckAndValidate_CrossingLine(t *testing.T) {
	// Row 0 already validated, column 0 completed with new selections
	states := statesWith(3, Validated, 0, 1, 2)
	states[3] = Selected
	states[6] = Selected

	next, found := CheckAndValidate(3, states)
	require.True(t, found)
	for _, pos := range []int{0, 1, 2, 3, 6} {
		assert.Equal(t, Validated, next[pos], "position %d", pos)
	}
	for _, pos := range []int{4, 5, 7, 8} {
		assert.Equal(t, None, next[pos], "position %d", pos)
	}
}

func TestCheckAndValidate_Diagonals(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		lines := Lines(size)
		anti := lines[len(lines)-1]

		states := statesWith(size, Selected, anti...)
		next, found := CheckAndValidate(size, states)
		require.True(t, found, "size %d", size)
		for _, pos := range anti {
			assert.Equal(t, Validated, next[pos])
		}
		assert.Equal(t, 1, CompleteLines(size, next))
	}
}

func TestCheckAndValidate_WrongLength(t *testing.T) {
	next, found := CheckAndValidate(3, []CellState{Selected, Selected})
	assert.False(t, found)
	assert.Equal(t, []CellState{Selected, Selected}, next)
}

func TestClick_DowngradeBreaksRow(t *testing.T) {
	states, found := CheckAndValidate(3, statesWith(3, Selected, 0, 1, 2))
	require.True(t, found)

	next := Click(3, states, 1)

	expected := statesWith(3, Selected, 0, 2)
	if diff := cmp.Diff(expected, next); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestClick_DowngradeKeepsUnaffectedLines(t *testing.T) {
	// Row 0 and row 2 validated, clicking inside row 0 leaves row 2 alone
	states := statesWith(3, Validated, 0, 1, 2, 6, 7, 8)

	next := Click(3, states, 0)

	assert.Equal(t, None, next[0])
	assert.Equal(t, Selected, next[1])
	assert.Equal(t, Selected, next[2])
	for _, pos := range []int{6, 7, 8} {
		assert.Equal(t, Validated, next[pos], "position %d", pos)
	}
	assert.Equal(t, 1, CompleteLines(3, next))
}

func TestClick_DowngradeSharedCell(t *testing.T) {
	// Row 0 and column 0 validated, they share position 0
	states := statesWith(3, Validated, 0, 1, 2, 3, 6)

	next := Click(3, states, 0)

	assert.Equal(t, None, next[0])
	for _, pos := range []int{1, 2, 3, 6} {
		assert.Equal(t, Selected, next[pos], "position %d", pos)
	}
	assert.Zero(t, CompleteLines(3, next))
}

func TestDowngrade_Idempotent(t *testing.T) {
	states := statesWith(4, Validated, 0, 5, 10, 15)
	states[1] = Selected

	once := Downgrade(4, states)
	twice := Downgrade(4, once)
	assert.Empty(t, cmp.Diff(once, twice))
	assert.Equal(t, Validated, once[0])
	assert.Equal(t, Selected, once[1])
}

func TestHasNewLine(t *testing.T) {
	assert.False(t, HasNewLine(3, NewStates(3)))
	assert.True(t, HasNewLine(3, statesWith(3, Selected, 2, 4, 6)))

	validated, _ := CheckAndValidate(3, statesWith(3, Selected, 2, 4, 6))
	assert.False(t, HasNewLine(3, validated))
}

func TestCellState_Text(t *testing.T) {
	for _, s := range []CellState{None, Selected, Validated} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var back CellState
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	var s CellState
	assert.Error(t, s.UnmarshalText([]byte("MAYBE")))
	assert.Equal(t, "CellState(7)", CellState(7).String())
}
