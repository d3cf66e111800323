// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExistsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <grid-id>",
		Short: "Check whether a grid exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			exists, err := c.GridExists(cmd.Context(), args[0])
			if err != nil {
				return describe(args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
}
