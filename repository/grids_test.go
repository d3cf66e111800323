// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/bingo-grid/ids"
	"github.com/danielhkuo/bingo-grid/testutil"
)

func TestCreateThenGet_AllSizes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)
	ctx := context.Background()

	for size := 2; size <= 5; size++ {
		texts := testutil.Texts(size * size)
		if size%2 == 1 {
			texts[size*size/2] = "" // free space
		}

		before := time.Now().Add(-time.Second)
		id, err := repo.Create(ctx, size, texts)
		require.NoError(t, err, "size %d", size)
		_, err = ids.Validate(id)
		require.NoError(t, err)

		grid, found, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, id, grid.ID)
		assert.Equal(t, size, grid.Size)
		if diff := cmp.Diff(texts, grid.Texts()); diff != "" {
			t.Errorf("size %d texts mismatch (-want +got):\n%s", size, diff)
		}
		for i, c := range grid.Cells {
			assert.Equal(t, i, c.Position, "cells must be in position order")
			assert.NotEmpty(t, c.ID)
		}
		assert.WithinDuration(t, time.Now(), grid.CreatedAt, 5*time.Second)
		assert.True(t, grid.CreatedAt.After(before))
	}
}

func TestCreate_CellIDsUnique(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	id, err := repo.Create(context.Background(), 4, testutil.Texts(16))
	require.NoError(t, err)

	grid, _, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range grid.Cells {
		assert.False(t, seen[c.ID], "duplicate cell id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestCreate_CountMismatchWritesNothing(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	_, err := repo.Create(context.Background(), 3, testutil.Texts(8))
	assert.True(t, errors.Is(err, ErrInvalidGrid))

	assert.Zero(t, testutil.CountRows(t, conn, "bingo_grids"))
	assert.Zero(t, testutil.CountRows(t, conn, "bingo_cells"))
}

func TestCreate_RollsBackOnCellFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	// Fail the insert of one specific cell, after the grid row is written
	_, err := conn.Exec(`
		CREATE TRIGGER fail_cell BEFORE INSERT ON bingo_cells
		WHEN NEW.text = 'boom'
		BEGIN
			SELECT RAISE(ABORT, 'cell insert failed');
		END;
	`)
	require.NoError(t, err)

	texts := testutil.Texts(9)
	texts[6] = "boom"

	_, err = repo.Create(context.Background(), 3, texts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert cell 6")

	assert.Zero(t, testutil.CountRows(t, conn, "bingo_grids"), "grid row must be rolled back")
	assert.Zero(t, testutil.CountRows(t, conn, "bingo_cells"), "cells must be rolled back")
}

func TestCreate_StoreUnavailable(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)
	conn.Close()

	_, err := repo.Create(context.Background(), 2, testutil.Texts(4))
	assert.Error(t, err)
}

func TestCreate_CanceledContext(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, 2, testutil.Texts(4))
	assert.Error(t, err)
	assert.Zero(t, testutil.CountRows(t, conn, "bingo_grids"))
}

func TestCreate_Concurrent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	gridIDs := make([]string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gridIDs[i], errs[i] = repo.Create(context.Background(), 2, testutil.Texts(4))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "create %d", i)
	}
	assert.Equal(t, n, testutil.CountRows(t, conn, "bingo_grids"))
	assert.Equal(t, n*4, testutil.CountRows(t, conn, "bingo_cells"))

	for _, id := range gridIDs {
		grid, found, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Len(t, grid.Cells, 4)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	grid, found, err := repo.GetByID(context.Background(), ids.New())
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, grid)
}

func TestGetByID_OrdersByPosition(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)

	// Insert cells out of order
	gridID := ids.New()
	_, err := conn.Exec(`INSERT INTO bingo_grids (id, size, created_at, updated_at) VALUES ($1, 2, $2, $2)`, gridID, time.Now().UTC())
	require.NoError(t, err)
	for _, pos := range []int{3, 1, 0, 2} {
		_, err := conn.Exec(`
			INSERT INTO bingo_cells (id, grid_id, text, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
		`, ids.New(), gridID, string(rune('A'+pos)), pos, time.Now().UTC())
		require.NoError(t, err)
	}

	grid, found, err := repo.GetByID(context.Background(), gridID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"A", "B", "C", "D"}, grid.Texts())
}

func TestExists(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	repo := NewGridRepository(conn)
	ctx := context.Background()

	id := testutil.CreateTestGrid(t, conn, 2, testutil.Texts(4))

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, ids.New())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Ping(ctx))
}
