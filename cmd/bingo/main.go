// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command bingo creates, shows and plays bingo grids against a Bingo Grid
// API server.
//
//	bingo create --size 3
//	bingo play 3f1c...e9
//	bingo show 3f1c...e9
//	bingo exists 3f1c...e9
package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		os.Stderr.WriteString("warning: could not load .env: " + err.Error() + "\n")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
