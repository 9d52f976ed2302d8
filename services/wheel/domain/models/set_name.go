package models

import (
	"fmt"
	"strings"
)

// SetName is a value object representing a valid wheel set name.
// Encapsulates validation rules: non-blank, at most 100 characters.
type SetName string

const maxSetNameLength = 100

// NewSetName constructs a valid SetName or returns an error if constraints are violated.
// Leading and trailing whitespace is trimmed before validation.
func NewSetName(s string) (SetName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("set name must not be empty")
	}
	if len(trimmed) > maxSetNameLength {
		return "", fmt.Errorf("set name must not exceed %d characters", maxSetNameLength)
	}
	return SetName(trimmed), nil
}

// String returns the underlying string value.
func (n SetName) String() string {
	return string(n)
}
