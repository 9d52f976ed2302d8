package domain

import "errors"

// Sentinel errors for the wheel domain. Use errors.Is() to check these.
var (
	// ErrSetNotFound indicates the wheel set does not exist or is owned by
	// another user. Ownership failures and absence are deliberately
	// indistinguishable to the caller.
	ErrSetNotFound = errors.New("wheel set not found")

	// ErrItemNotFound indicates the item does not exist within the named set.
	ErrItemNotFound = errors.New("wheel item not found")

	// ErrNoReorderTargets indicates a reorder request where none of the
	// supplied ids belong to the set.
	ErrNoReorderTargets = errors.New("no valid items to reorder")

	// ErrInvalidSetName indicates the set name violates domain constraints.
	ErrInvalidSetName = errors.New("invalid wheel set name")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid wheel item name")

	// ErrVersionConflict indicates a stale client version under strict
	// versioning. Never returned in advisory mode.
	ErrVersionConflict = errors.New("wheel set version conflict")
)
