// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/bingo-grid/bingo"
	"github.com/danielhkuo/bingo-grid/models"
	"github.com/danielhkuo/bingo-grid/repository"
	"github.com/danielhkuo/bingo-grid/testutil"
)

// TestFullGridWorkflow tests the complete end-to-end workflow:
// 1. Create a 3x3 grid with an empty free space
// 2. Check it exists
// 3. Load it
// 4. Play a row to bingo on the loaded cells
// 5. Reload and confirm play state was never stored
func TestFullGridWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig(t)
	gridHandler := NewGridHandler(repository.NewGridRepository(db), cfg)

	// Step 1: Create a grid
	texts := []string{"coffee", "standup", "deploy", "pager", "", "rollback", "lunch", "retro", "demo"}
	cells := make([]map[string]string, len(texts))
	for i, text := range texts {
		cells[i] = map[string]string{"text": text}
	}
	createReq := map[string]interface{}{"size": 3, "cells": cells}

	w := httptest.NewRecorder()
	gridHandler.CreateGrid(w, testutil.MakeRequest("POST", "/grids", createReq, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create grid failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreateGridResponse
	testutil.AssertJSON(t, w, &createResp)
	gridID := createResp.ID
	t.Logf("Step 1 - Created grid: %s", gridID)

	// Step 2: Exists
	req := httptest.NewRequest("GET", "/grids/"+gridID+"/exists", nil)
	req.SetPathValue("id", gridID)
	w = httptest.NewRecorder()
	gridHandler.GridExists(w, req)

	var existsResp models.ExistsResponse
	testutil.AssertJSON(t, w, &existsResp)
	if !existsResp.Exists {
		t.Fatal("Step 2 - Grid should exist")
	}

	// Step 3: Load
	grid := loadGrid(t, gridHandler, gridID)
	if grid.Size != 3 || len(grid.Cells) != 9 {
		t.Fatalf("Step 3 - Unexpected grid shape: size=%d cells=%d", grid.Size, len(grid.Cells))
	}
	if bingo.DisplayText(grid.Size, 4, grid.Cells[4].Text) != "FREE" {
		t.Errorf("Step 3 - Expected the empty center to read FREE")
	}

	// Step 4: Play the middle row through the free space
	states := bingo.NewStates(grid.Size)
	for _, pos := range []int{3, 4, 5} {
		states = bingo.Click(grid.Size, states, pos)
	}
	states, found := bingo.CheckAndValidate(grid.Size, states)
	if !found {
		t.Fatal("Step 4 - Expected a bingo on the middle row")
	}
	if bingo.CompleteLines(grid.Size, states) != 1 {
		t.Errorf("Step 4 - Expected exactly one validated line")
	}
	t.Logf("Step 4 - Bingo on %s / %s / %s",
		grid.Cells[3].Text, bingo.DisplayText(3, 4, grid.Cells[4].Text), grid.Cells[5].Text)

	// Step 5: Reload gives the same grid and no stored play state
	again := loadGrid(t, gridHandler, gridID)
	for i := range texts {
		if again.Cells[i].Text != texts[i] || again.Cells[i].ID != grid.Cells[i].ID {
			t.Errorf("Step 5 - Cell %d changed between loads", i)
		}
	}
	if n := testutil.CountRows(t, db, "bingo_grids"); n != 1 {
		t.Errorf("Step 5 - Expected 1 grid row, got %d", n)
	}
}

func loadGrid(t *testing.T, h *GridHandler, gridID string) models.Grid {
	t.Helper()

	req := httptest.NewRequest("GET", "/grids/"+gridID, nil)
	req.SetPathValue("id", gridID)
	w := httptest.NewRecorder()
	h.GetGrid(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Get grid failed: %d - %s", w.Code, w.Body.String())
	}
	var grid models.Grid
	testutil.AssertJSON(t, w, &grid)
	return grid
}
