package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for the wheel bounded context.
const (
	// TopicWheelSetCreated is published after a new WheelSet is persisted.
	TopicWheelSetCreated = "wheel.set.created"

	// TopicWheelSetDeleted is published after a WheelSet and its items are removed.
	TopicWheelSetDeleted = "wheel.set.deleted"

	// TopicImportCompleted is published after a legacy snapshot import finishes.
	TopicImportCompleted = "wheel.import.completed"
)

// WheelSetCreatedEvent is published after a new WheelSet is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicWheelSetCreated).
type WheelSetCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	SetID      uuid.UUID `json:"set_id"`
	UserID     uuid.UUID `json:"user_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// WheelSetDeletedEvent is published after a WheelSet is deleted. ItemCount
// records how many child items the cascade removed.
type WheelSetDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	SetID      uuid.UUID `json:"set_id"`
	UserID     uuid.UUID `json:"user_id"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ImportCompletedEvent is published once per successful legacy snapshot
// import, after all sets are created.
type ImportCompletedEvent struct {
	EventID    uuid.UUID   `json:"event_id"`
	Version    int         `json:"version"`
	UserID     uuid.UUID   `json:"user_id"`
	SetIDs     []uuid.UUID `json:"set_ids"`
	Imported   int         `json:"imported"`
	OccurredAt time.Time   `json:"occurred_at"`
}
