// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid grid ID format")

// canonicalLen is the length of the hyphenated 8-4-4-4-12 form
const canonicalLen = 36

// New returns a random (version 4) UUID in lower case
func New() string {
	return uuid.NewString()
}

// Validate checks that s is a UUID in canonical hyphenated form and returns
// it lower-cased. Braced, URN and unhyphenated forms are rejected.
func Validate(s string) (string, error) {
	if len(s) != canonicalLen {
		return "", ErrInvalidID
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return "", ErrInvalidID
	}
	return strings.ToLower(u.String()), nil
}
