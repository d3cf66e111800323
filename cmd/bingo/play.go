// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bingo-grid/tui"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play <grid-id>",
		Short: "Play a grid in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			grid, err := c.GetGrid(cmd.Context(), args[0])
			if err != nil {
				return describe(args[0], err)
			}

			_, err = tea.NewProgram(tui.NewPlayer(grid), tea.WithAltScreen()).Run()
			return err
		},
	}
}
