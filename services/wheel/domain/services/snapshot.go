// Package services holds domain services for the wheel bounded context:
// logic that spans raw input and the model layer without doing I/O.
package services

import (
	"fmt"
	"math"

	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
)

// DefaultSetName is the placeholder used when a legacy snapshot entry has a
// missing or non-string name.
const DefaultSetName = "Untitled Wheel"

// SnapshotSet is one normalized legacy wheel ready to be created fresh.
type SnapshotSet struct {
	Name  models.SetName
	Items []SnapshotItem
}

// SnapshotItem is one normalized legacy option.
type SnapshotItem struct {
	Name  models.ItemName
	Color *string
	Order int
}

// NormalizeSnapshot coerces a decoded legacy client snapshot into clean
// domain values. The payload is whatever the old client had in local
// storage, so nothing about its shape is trusted:
//
//   - a missing or non-array wheelSets yields zero sets, not an error
//   - a set name that is missing or not a string becomes DefaultSetName
//   - an item name that is missing or not a string becomes "Item {n}" (1-based)
//   - an order that is not a finite number defaults to the item's position
//   - colors are kept when they are strings; every other legacy field is dropped
//
// Normalization is best effort per entry; one malformed set never aborts the
// rest.
func NormalizeSnapshot(payload map[string]any) []SnapshotSet {
	raw, ok := payload["wheelSets"].([]any)
	if !ok {
		return nil
	}

	sets := make([]SnapshotSet, 0, len(raw))
	for _, entry := range raw {
		sets = append(sets, normalizeSet(entry))
	}
	return sets
}

func normalizeSet(entry any) SnapshotSet {
	fields, _ := entry.(map[string]any)

	name := DefaultSetName
	if s, ok := fields["name"].(string); ok && s != "" {
		name = s
	}
	setName, err := models.NewSetName(name)
	if err != nil {
		setName, _ = models.NewSetName(DefaultSetName)
	}

	rawItems, _ := fields["items"].([]any)
	items := make([]SnapshotItem, 0, len(rawItems))
	for i, rawItem := range rawItems {
		items = append(items, normalizeItem(rawItem, i))
	}
	return SnapshotSet{Name: setName, Items: items}
}

func normalizeItem(entry any, position int) SnapshotItem {
	fields, _ := entry.(map[string]any)

	name := fmt.Sprintf("Item %d", position+1)
	if s, ok := fields["name"].(string); ok && s != "" {
		name = s
	}
	itemName, err := models.NewItemName(name)
	if err != nil {
		itemName, _ = models.NewItemName(fmt.Sprintf("Item %d", position+1))
	}

	order := position
	if f, ok := fields["order"].(float64); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		order = int(f)
	}

	var color *string
	if c, ok := fields["color"].(string); ok && c != "" {
		color = &c
	}

	return SnapshotItem{Name: itemName, Color: color, Order: order}
}
