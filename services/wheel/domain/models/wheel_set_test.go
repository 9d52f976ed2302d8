package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewWheelSet(t *testing.T) {
	userID := uuid.New()
	name, _ := NewSetName("Lunch")

	set, err := NewWheelSet(userID, name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Version != 0 {
		t.Fatalf("expected version 0, got %d", set.Version)
	}
	if set.UserID != userID {
		t.Fatalf("owner not set")
	}
	if len(set.Items) != 0 {
		t.Fatalf("expected empty item list")
	}
	if set.CreatedAt.IsZero() || set.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
}

func TestWheelSetSortItems(t *testing.T) {
	set := &WheelSet{Items: []WheelItem{
		{ID: uuid.New(), Name: "c", Order: 5},
		{ID: uuid.New(), Name: "a", Order: 0},
		{ID: uuid.New(), Name: "b", Order: 2},
	}}
	set.SortItems()

	got := []string{set.Items[0].Name.String(), set.Items[1].Name.String(), set.Items[2].Name.String()}
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestWheelSetSortItemsDuplicateOrders(t *testing.T) {
	// Duplicate order values are tolerated; the tiebreak on ID keeps the
	// result deterministic across calls.
	items := []WheelItem{
		{ID: uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000000"), Name: "second", Order: 1},
		{ID: uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000000"), Name: "first", Order: 1},
	}
	set := &WheelSet{Items: items}
	set.SortItems()

	if set.Items[0].Name != "first" || set.Items[1].Name != "second" {
		t.Fatalf("unexpected tiebreak order: %v, %v", set.Items[0].Name, set.Items[1].Name)
	}
}

func TestWheelSetItemByID(t *testing.T) {
	target := uuid.New()
	set := &WheelSet{Items: []WheelItem{
		{ID: uuid.New(), Name: "x"},
		{ID: target, Name: "y"},
	}}

	if item := set.ItemByID(target); item == nil || item.Name != "y" {
		t.Fatalf("expected item y, got %+v", item)
	}
	if item := set.ItemByID(uuid.New()); item != nil {
		t.Fatalf("expected nil for unknown id, got %+v", item)
	}
}
