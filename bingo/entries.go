// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bingo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCell   = errors.New("cell is empty")
	ErrInvalidSize = errors.New("grid size must be between 2 and 5")
)

// EntryError points at the first cell an editor must fill in.
type EntryError struct {
	Position int
	Err      error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("cell %d: %v", e.Position, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// CheckEntries is the editor's pre-submit rule: the grid has size*size
// cells and every cell except the free space has non-blank text.
// The server accepts blank cells; this check only guards the editor.
func CheckEntries(size int, texts []string) error {
	if !ValidSize(size) {
		return ErrInvalidSize
	}
	if len(texts) != size*size {
		return fmt.Errorf("expected %d cells, got %d", size*size, len(texts))
	}
	for i, text := range texts {
		if IsFreeSpace(size, i) {
			continue
		}
		if strings.TrimSpace(text) == "" {
			return &EntryError{Position: i, Err: ErrEmptyCell}
		}
	}
	return nil
}
