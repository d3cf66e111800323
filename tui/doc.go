// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui provides the terminal Grid Editor and Grid Player.
//
// Both are bubbletea models. They hold no network or storage handles:
// the caller runs the program, then reads the result (Editor.Texts) or
// simply discards the model (Player), since play state is never saved.
package tui
