// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/bingo-grid/cliparse"
	"github.com/danielhkuo/bingo-grid/db"
	"github.com/danielhkuo/bingo-grid/ids"
)

// SetupTestDB creates a fresh file-backed SQLite database with the full schema.
// The database lives in t.TempDir() and is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), GetTestConfig(t))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointing at a
// SQLite file under t.TempDir()
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:           3001,
		DatabaseType:   cliparse.DatabaseSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "bingo_test.db"),
		PoolSize:       cliparse.PoolSize,
		IdleTimeout:    30 * time.Second,
		ConnectTimeout: 2 * time.Second,
	}
}

// CreateTestGrid inserts a grid and its cells directly and returns the grid ID
func CreateTestGrid(t *testing.T, conn *sql.DB, size int, texts []string) string {
	t.Helper()

	gridID := ids.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err := conn.Exec(`
		INSERT INTO bingo_grids (id, size, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
	`, gridID, size, now)
	if err != nil {
		t.Fatalf("Failed to create test grid: %v", err)
	}

	for i, text := range texts {
		_, err := conn.Exec(`
			INSERT INTO bingo_cells (id, grid_id, text, position, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
		`, ids.New(), gridID, text, i, now)
		if err != nil {
			t.Fatalf("Failed to create test cell: %v", err)
		}
	}

	return gridID
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// Texts returns n distinct cell texts "cell-a", "cell-b", ...
func Texts(n int) []string {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = "cell-" + string(rune('a'+i))
	}
	return texts
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		case []byte:
			raw = b
		default:
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
