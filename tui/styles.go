// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/bingo-grid/bingo"
)

const cellWidth = 14

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	hintStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(2).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	selectedStyle  = cellStyle.Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231"))
	validatedStyle = cellStyle.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231")).Bold(true)
	freeStyle      = cellStyle.Foreground(lipgloss.Color("214"))
)

// stateStyle picks the cell style for a play state
func stateStyle(s bingo.CellState) lipgloss.Style {
	switch s {
	case bingo.Validated:
		return validatedStyle
	case bingo.Selected:
		return selectedStyle
	default:
		return cellStyle
	}
}

// focus marks the cell under the cursor
func focus(s lipgloss.Style) lipgloss.Style {
	return s.BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("205"))
}

// renderGrid lays cells out row by row
func renderGrid(size int, cells []string) string {
	rows := make([]string, 0, size)
	for r := 0; r < size; r++ {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[r*size:(r+1)*size]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
