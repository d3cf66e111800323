// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/bingo-grid/bingo"
)

// maxCellText bounds what a player can read in one cell
const maxCellText = 80

// Editor collects a grid size and one text per cell.
//
// The model runs inside the bubbletea event loop; read the result with
// Submitted, Size and Texts after the program exits.
type Editor struct {
	size      int
	inputs    []textinput.Model
	focused   int
	err       error
	submitted bool
	canceled  bool
}

// NewEditor starts an empty editor. An invalid size falls back to
// bingo.DefaultSize.
func NewEditor(size int) Editor {
	if !bingo.ValidSize(size) {
		size = bingo.DefaultSize
	}
	m := Editor{}
	m.resize(size)
	return m
}

// resize replaces every cell with a blank input
func (m *Editor) resize(size int) {
	m.size = size
	m.focused = 0
	m.err = nil
	m.inputs = make([]textinput.Model, size*size)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = maxCellText
		ti.Width = cellWidth
		if bingo.IsFreeSpace(size, i) {
			ti.Placeholder = "★ FREE"
		} else {
			ti.Placeholder = fmt.Sprintf("cell %d", i+1)
		}
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
}

func (m Editor) Size() int {
	return m.size
}

func (m Editor) Submitted() bool {
	return m.submitted
}

func (m Editor) Canceled() bool {
	return m.canceled
}

// Err is the last rejected submit, if any.
func (m Editor) Err() error {
	return m.err
}

// Texts returns the trimmed cell texts in position order.
func (m Editor) Texts() []string {
	texts := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		texts[i] = strings.TrimSpace(in.Value())
	}
	return texts
}

func (m Editor) Init() tea.Cmd {
	return textinput.Blink
}

func (m Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit

	case "ctrl+g":
		next := m.size + 1
		if next > bingo.MaxSize {
			next = bingo.MinSize
		}
		m.resize(next)
		return m, nil

	case "tab", "down":
		m.setFocus((m.focused + 1) % len(m.inputs))
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focused - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil

	case "ctrl+s":
		if err := bingo.CheckEntries(m.size, m.Texts()); err != nil {
			m.err = err
			var entryErr *bingo.EntryError
			if errors.As(err, &entryErr) {
				m.setFocus(entryErr.Position)
			}
			return m, nil
		}
		m.err = nil
		m.submitted = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Editor) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m Editor) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("New bingo grid  %dx%d", m.size, m.size)))
	b.WriteString("\n\n")

	cells := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		style := cellStyle
		if bingo.IsFreeSpace(m.size, i) {
			style = freeStyle
		}
		if i == m.focused {
			style = focus(style)
			cells[i] = style.Render(in.View())
			continue
		}
		text := in.Value()
		if text == "" {
			text = in.Placeholder
		}
		cells[i] = style.Render(truncate(text, cellWidth))
	}
	b.WriteString(renderGrid(m.size, cells))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errStyle.Render(editorErrText(m.err)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/↓ next • shift+tab/↑ prev • ctrl+g size • ctrl+s create • esc cancel"))
	return b.String()
}

func editorErrText(err error) string {
	var entryErr *bingo.EntryError
	if errors.As(err, &entryErr) {
		return fmt.Sprintf("Fill in cell %d before creating the grid.", entryErr.Position+1)
	}
	return err.Error()
}
