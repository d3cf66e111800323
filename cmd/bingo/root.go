// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/bingo-grid/client"
)

const defaultServer = "http://localhost:3001"

// options shared by every subcommand
type options struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "bingo",
		Short:        "Create and play bingo grids",
		SilenceUsage: true,
	}

	server := os.Getenv("BINGO_SERVER")
	if server == "" {
		server = defaultServer
	}
	rootCmd.PersistentFlags().StringVar(&opts.server, "server", server, "Bingo Grid API URL (env BINGO_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "Per-request timeout")

	rootCmd.AddCommand(
		newCreateCmd(opts),
		newPlayCmd(opts),
		newShowCmd(opts),
		newExistsCmd(opts),
	)
	return rootCmd
}

func (o *options) client() (*client.Client, error) {
	return client.New(o.server, client.WithTimeout(o.timeout))
}

// describe turns client errors into messages a player can act on
func describe(id string, err error) error {
	switch {
	case client.IsNotFound(err):
		return fmt.Errorf("grid %s not found", id)
	case client.IsInvalid(err):
		return fmt.Errorf("invalid grid id %q", id)
	default:
		return err
	}
}
