package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
)

// BatchChange is the precomputed diff a batch replace applies: stored items
// absent from the desired list are deleted, recognized ids updated in place,
// the rest created fresh. The application service computes the diff; the
// repository applies it atomically.
type BatchChange struct {
	DeleteIDs []uuid.UUID
	Updates   []*models.WheelItem
	Creates   []*models.WheelItem
}

// WheelRepository is the persistence interface for the WheelSet aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every read is scoped by userID so ownership failures surface as
// domain.ErrSetNotFound, indistinguishable from absence. Item-level writes
// take the parent setID and must bump the set's updated_at in the same
// transaction (membership mutations touch the set, not its version).
type WheelRepository interface {
	// SaveSet persists a new WheelSet and publishes WheelSetCreatedEvent
	// in the same transaction.
	SaveSet(ctx context.Context, set *models.WheelSet) error

	// FindSetsByUserID returns all sets owned by the user, newest first,
	// with items loaded and ordered ascending by order.
	FindSetsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.WheelSet, error)

	// GetSetByID retrieves one set with its items, or domain.ErrSetNotFound.
	GetSetByID(ctx context.Context, userID, setID uuid.UUID) (*models.WheelSet, error)

	// UpdateSet persists the set row (name, version, updated_at) of a
	// loaded aggregate. Item changes are not written here.
	UpdateSet(ctx context.Context, set *models.WheelSet) error

	// DeleteSet removes the set and all child items in one transaction and
	// publishes WheelSetDeletedEvent. Takes the loaded aggregate so the
	// event can carry the cascade size.
	DeleteSet(ctx context.Context, set *models.WheelSet) error

	// AddItem persists a new item under its set.
	AddItem(ctx context.Context, item *models.WheelItem) error

	// AddItems bulk-inserts items for a single set in one transaction.
	// Used by the legacy snapshot import.
	AddItems(ctx context.Context, setID uuid.UUID, items []*models.WheelItem) error

	// UpdateItem persists changes to an existing item.
	UpdateItem(ctx context.Context, item *models.WheelItem) error

	// DeleteItem removes one item. The caller has already verified the item
	// belongs to the set.
	DeleteItem(ctx context.Context, setID, itemID uuid.UUID) error

	// UpdateOrders applies all order assignments as a single transaction;
	// either every assignment is visible or none is.
	UpdateOrders(ctx context.Context, setID uuid.UUID, assignments []models.OrderAssignment) error

	// ApplyBatch persists the set row of the (possibly renamed, version
	// bumped) aggregate together with the item diff, all in one transaction.
	ApplyBatch(ctx context.Context, set *models.WheelSet, change BatchChange) error
}
