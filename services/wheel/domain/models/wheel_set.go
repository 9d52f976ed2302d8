package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// WheelSet is the aggregate root for this bounded context: a named, owned,
// ordered collection of WheelItems the user can spin.
type WheelSet struct {
	ID        uuid.UUID
	UserID    uuid.UUID // ownership scope — always filter by this in queries
	Name      SetName
	Version   int64 // bumped by exactly 1 on every accepted set-level update
	Items     []WheelItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWheelSet constructs a valid WheelSet aggregate with generated ID,
// version 0, an empty item list, and current timestamps.
func NewWheelSet(userID uuid.UUID, name SetName) (*WheelSet, error) {
	now := time.Now().UTC()
	return &WheelSet{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Version:   0,
		Items:     []WheelItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SortItems orders Items ascending by their order field. The order field is
// the source of truth; storage order is irrelevant. Equal order values keep a
// stable tiebreak on item ID so responses are deterministic.
func (s *WheelSet) SortItems() {
	sort.SliceStable(s.Items, func(i, j int) bool {
		if s.Items[i].Order != s.Items[j].Order {
			return s.Items[i].Order < s.Items[j].Order
		}
		return s.Items[i].ID.String() < s.Items[j].ID.String()
	})
}

// ItemByID returns the child item with the given id, or nil if the set has no
// such item. An item id alone is never a sufficient credential; callers reach
// items only through their parent set.
func (s *WheelSet) ItemByID(itemID uuid.UUID) *WheelItem {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}
