// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/bingo-grid/bingo"
	"github.com/danielhkuo/bingo-grid/models"
)

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <grid-id>",
		Short: "Print a grid's cells",
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

			return printGrid(cmd.OutOrStdout(), grid, time.Now())
		},
	}
}

// printGrid writes the grid row by row, with its age relative to now
func printGrid(out io.Writer, grid *models.Grid, now time.Time) error {
	if want := grid.Size * grid.Size; grid.Size <= 0 || len(grid.Cells) != want {
		return fmt.Errorf("grid %s: expected %d cells, got %d", grid.ID, want, len(grid.Cells))
	}

	age := humanize.RelTime(grid.CreatedAt, now, "ago", "from now")
	fmt.Fprintf(out, "Grid %s (%dx%d), created %s\n\n", grid.ID, grid.Size, grid.Size, age)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for r := 0; r < grid.Size; r++ {
		row := make([]string, grid.Size)
		for c := range row {
			pos := r*grid.Size + c
			row[c] = bingo.DisplayText(grid.Size, pos, grid.Cells[pos].Text)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	return tw.Flush()
}
