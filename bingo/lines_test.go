// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bingo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines_Count(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		assert.Len(t, Lines(size), 2*size+2, "size %d", size)
	}
	assert.Nil(t, Lines(0))
}

func TestLines_ThreeByThree(t *testing.T) {
	expected := [][]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
	assert.Equal(t, expected, Lines(3))
}

func TestLines_Membership(t *testing.T) {
	for size := MinSize; size <= MaxSize; size++ {
		counts := make([]int, size*size)
		for _, line := range Lines(size) {
			require.Len(t, line, size)
			for _, pos := range line {
				counts[pos]++
			}
		}

		for pos, n := range counts {
			row, col := pos/size, pos%size
			onMain := row == col
			onAnti := row+col == size-1

			want := 2
			switch {
			case onMain && onAnti:
				want = 4
			case onMain || onAnti:
				want = 3
			}
			assert.Equal(t, want, n, "size %d position %d", size, pos)
		}
	}
}

func TestIsFreeSpace(t *testing.T) {
	tests := []struct {
		size     int
		position int
		expected bool
	}{
		{3, 4, true},
		{5, 12, true},
		{5, 11, false},
		{3, 0, false},
		{2, 1, false},
		{4, 8, false},
		{4, 5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsFreeSpace(tt.size, tt.position), "size %d position %d", tt.size, tt.position)
	}
}

func TestDisplayText(t *testing.T) {
	assert.Equal(t, "FREE", DisplayText(3, 4, ""))
	assert.Equal(t, "Coffee", DisplayText(3, 4, "Coffee"))
	assert.Equal(t, "", DisplayText(3, 0, ""))
	assert.Equal(t, "", DisplayText(4, 8, ""))
}

func TestCheckEntries(t *testing.T) {
	full3 := []string{"a", "b", "c", "d", "", "f", "g", "h", "i"}
	assert.NoError(t, CheckEntries(3, full3))

	missing := []string{"a", "b", "c", "d", "e", "  ", "g", "h", "i"}
	err := CheckEntries(3, missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyCell))

	var entryErr *EntryError
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, 5, entryErr.Position)

	// Even grids have no free space
	err = CheckEntries(2, []string{"a", "b", "", "d"})
	require.True(t, errors.As(err, &entryErr))
	assert.Equal(t, 2, entryErr.Position)

	assert.ErrorIs(t, CheckEntries(6, make([]string, 36)), ErrInvalidSize)
	assert.Error(t, CheckEntries(2, []string{"a"}))
}
