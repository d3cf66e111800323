// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/bingo-grid/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RequestError is a client input error. Index is the offending cell
// position for CodeInvalidCell and -1 otherwise.
type RequestError struct {
	Code    string
	Message string
	Index   int
}

func (e *RequestError) Error() string {
	return e.Message
}

func invalidInput() *RequestError {
	return &RequestError{
		Code:    models.CodeInvalidInput,
		Message: "Invalid input. Size and cells array are required.",
		Index:   -1,
	}
}

// ValidateCreateRequest checks a create request and returns the cell texts
// in position order. Checks run in order and the first failure wins:
//
//  1. size and cells are present
//  2. 2 <= size <= 5
//  3. len(cells) == size*size
//  4. every cell has a string text (empty allowed)
func ValidateCreateRequest(req models.CreateGridRequest) ([]string, *RequestError) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, invalidInput()
		}
		for _, fe := range verrs {
			if fe.Tag() == "required" {
				return nil, invalidInput()
			}
		}
		return nil, &RequestError{
			Code:    models.CodeSizeOutOfRange,
			Message: "Grid size must be between 2 and 5.",
			Index:   -1,
		}
	}

	size := *req.Size
	if expected := size * size; len(req.Cells) != expected {
		return nil, &RequestError{
			Code:    models.CodeCellCountMismatch,
			Message: fmt.Sprintf("Expected %d cells, received %d.", expected, len(req.Cells)),
			Index:   -1,
		}
	}

	texts := make([]string, len(req.Cells))
	for i, raw := range req.Cells {
		var cell models.CellInput
		if err := json.Unmarshal(raw, &cell); err != nil || validate.Struct(cell) != nil {
			return nil, &RequestError{
				Code:    models.CodeInvalidCell,
				Message: fmt.Sprintf("Invalid cell at position %d. Each cell must have a text property.", i),
				Index:   i,
			}
		}
		texts[i] = *cell.Text
	}

	return texts, nil
}
