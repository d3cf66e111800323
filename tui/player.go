// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/bingo-grid/bingo"
	"github.com/danielhkuo/bingo-grid/models"
)

const (
	msgBingo  = "BINGO! You got a line!"
	msgNotYet = "Not yet! Keep playing!"
)

// Player plays one grid. Play state starts empty on every load and lives
// only in the model.
type Player struct {
	grid    *models.Grid
	states  []bingo.CellState
	cursor  int
	message string
	now     func() time.Time
}

func NewPlayer(grid *models.Grid) Player {
	return Player{
		grid:   grid,
		states: bingo.NewStates(grid.Size),
		now:    time.Now,
	}
}

// States returns a copy of the current play state.
func (m Player) States() []bingo.CellState {
	return append([]bingo.CellState(nil), m.states...)
}

func (m Player) Cursor() int {
	return m.cursor
}

func (m Player) Message() string {
	return m.message
}

func (m Player) Init() tea.Cmd {
	return nil
}

func (m Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	size := m.grid.Size
	row, col := m.cursor/size, m.cursor%size

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if row > 0 {
			m.cursor -= size
		}
	case "down", "j":
		if row < size-1 {
			m.cursor += size
		}
	case "left", "h":
		if col > 0 {
			m.cursor--
		}
	case "right", "l":
		if col < size-1 {
			m.cursor++
		}
	case "enter", " ":
		m.states = bingo.Click(size, m.states, m.cursor)
		m.message = ""
	case "b":
		var found bool
		m.states, found = bingo.CheckAndValidate(size, m.states)
		if found {
			m.message = msgBingo
		} else {
			m.message = msgNotYet
		}
	}
	return m, nil
}

func (m Player) View() string {
	var b strings.Builder
	size := m.grid.Size

	b.WriteString(titleStyle.Render(fmt.Sprintf("Bingo %dx%d", size, size)))
	b.WriteString(helpStyle.Render("  created " + humanize.RelTime(m.grid.CreatedAt, m.now(), "ago", "from now")))
	b.WriteString("\n")
	if n := bingo.CompleteLines(size, m.states); n > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%d %s validated", n, plural(n, "line", "lines"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cells := make([]string, len(m.grid.Cells))
	for i, c := range m.grid.Cells {
		style := stateStyle(m.states[i])
		if m.states[i] == bingo.None && bingo.IsFreeSpace(size, i) {
			style = freeStyle
		}
		if i == m.cursor {
			style = focus(style)
		}
		cells[i] = style.Render(truncate(bingo.DisplayText(size, i, c.Text), cellWidth))
	}
	b.WriteString(renderGrid(size, cells))
	b.WriteString("\n")

	switch {
	case m.message == msgBingo:
		b.WriteString(winStyle.Render(m.message))
		b.WriteString("\n")
	case m.message != "":
		b.WriteString(m.message)
		b.WriteString("\n")
	case bingo.HasNewLine(size, m.states):
		b.WriteString(hintStyle.Render("Potential bingo! Press b to check."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("arrows move • enter/space mark • b bingo • q quit"))
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
