package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid wheel item name.
// Encapsulates validation rules: non-blank, at most 100 characters.
type ItemName string

const maxItemNameLength = 100

// NewItemName constructs a valid ItemName or returns an error if constraints are violated.
func NewItemName(s string) (ItemName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("item name must not be empty")
	}
	if len(trimmed) > maxItemNameLength {
		return "", fmt.Errorf("item name must not exceed %d characters", maxItemNameLength)
	}
	return ItemName(trimmed), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
