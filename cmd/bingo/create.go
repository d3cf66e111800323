// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bingo-grid/bingo"
	"github.com/danielhkuo/bingo-grid/tui"
)

var errCanceled = errors.New("canceled")

func newCreateCmd(opts *options) *cobra.Command {
	var size int
	var texts []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a grid in the editor, or from --text values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			if len(texts) == 0 {
				size, texts, err = runEditor(size)
				if err != nil {
					return err
				}
			} else if err := bingo.CheckEntries(size, texts); err != nil {
				return err
			}

			id, err := c.CreateGrid(cmd.Context(), size, texts)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created grid %s\nShare: %s\n", id, c.ShareURL(id))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", bingo.DefaultSize, "Grid size, 2 to 5")
	cmd.Flags().StringArrayVar(&texts, "text", nil, "Cell text in position order; repeat once per cell to skip the editor")
	return cmd
}

func runEditor(size int) (int, []string, error) {
	final, err := tea.NewProgram(tui.NewEditor(size), tea.WithAltScreen()).Run()
	if err != nil {
		return 0, nil, err
	}

	editor, ok := final.(tui.Editor)
	if !ok {
		return 0, nil, fmt.Errorf("unexpected model type from bubbletea: %T", final)
	}
	if !editor.Submitted() {
		return 0, nil, errCanceled
	}
	return editor.Size(), editor.Texts(), nil
}
