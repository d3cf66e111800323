package models

import (
	"encoding/json"
	"time"
)

// Messages returned to API callers
const (
	MessageGridCreated = "Bingo grid created successfully"
)

// Error codes carried in ErrorResponse.Code
const (
	CodeInvalidInput      = "invalid_input"
	CodeSizeOutOfRange    = "size_out_of_range"
	CodeCellCountMismatch = "cell_count_mismatch"
	CodeInvalidCell       = "invalid_cell"
	CodeInvalidID         = "invalid_id"
	CodeNotFound          = "not_found"
	CodeInternal          = "internal_error"
)

// Request types

// Cells stay raw so that one malformed cell is reported by position
// instead of failing the whole body.
type CreateGridRequest struct {
	Size  *int              `json:"size" validate:"required,min=2,max=5"`
	Cells []json.RawMessage `json:"cells" validate:"required"`
}

type CellInput struct {
	Text *string `json:"text" validate:"required"`
}

// Response types

type CreateGridResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// Domain types

type Grid struct {
	ID        string    `json:"id"`
	Size      int       `json:"size"`
	Cells     []Cell    `json:"cells"`
	CreatedAt time.Time `json:"createdAt"`
}

type Cell struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Position int    `json:"-"` // implied by order in Grid.Cells
}

// Texts returns the cell texts in position order
func (g Grid) Texts() []string {
	texts := make([]string, len(g.Cells))
	for i, c := range g.Cells {
		texts[i] = c.Text
	}
	return texts
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
