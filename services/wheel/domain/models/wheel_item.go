package models

import "github.com/google/uuid"

// WheelItem is one selectable option within a WheelSet. Order is
// caller-supplied and intentionally not unique: duplicate and sparse order
// values are tolerated, ties broken deterministically at sort time.
type WheelItem struct {
	ID          uuid.UUID
	SetID       uuid.UUID // immutable once created
	Name        ItemName
	Description *string
	Color       *string
	Order       int
}

// NewWheelItem constructs a valid WheelItem with a generated ID.
func NewWheelItem(setID uuid.UUID, name ItemName, description, color *string, order int) (*WheelItem, error) {
	return &WheelItem{
		ID:          uuid.New(),
		SetID:       setID,
		Name:        name,
		Description: description,
		Color:       color,
		Order:       order,
	}, nil
}
