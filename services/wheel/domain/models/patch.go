package models

import "github.com/google/uuid"

// SetPatch describes a partial update to a WheelSet. Version, when supplied,
// is the client's expected version: advisory by default, rejected on mismatch
// only under strict versioning.
type SetPatch struct {
	Name    Field[string]
	Version Field[int64]
}

// ItemPatch describes a partial update to a WheelItem. Absent fields are left
// unchanged; an explicit null clears Description or Color.
type ItemPatch struct {
	Name        Field[string]
	Description Field[string]
	Color       Field[string]
	Order       Field[int]
}

// OrderAssignment pairs an item id with its new order value for reorder calls.
type OrderAssignment struct {
	ID    uuid.UUID
	Order int
}

// ReplacementItem is one entry of a batch-replace item list. A nil ID (or an
// id the set no longer contains) means the entry is created fresh; a
// recognized ID updates that item in place.
type ReplacementItem struct {
	ID          *uuid.UUID
	Name        ItemName
	Description *string
	Color       *string
	Order       int
}
