package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func decodeSnapshot(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("test payload does not decode: %v", err)
	}
	return payload
}

func TestImportLegacySnapshot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("well formed snapshot imports every set", func(t *testing.T) {
		repo := newFakeWheelRepo()
		svc := NewImportService(repo, nil)

		result, err := svc.ImportLegacySnapshot(ctx, userID, decodeSnapshot(t, `{
			"wheelSets": [
				{"name": "Lunch", "items": [
					{"name": "Pizza", "color": "#ff0000", "order": 1},
					{"name": "Sushi", "order": 0}
				]},
				{"name": "Movies", "items": []}
			]
		}`))
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if result.Imported != 2 {
			t.Fatalf("expected 2 imported, got %d", result.Imported)
		}

		// Everything is persisted under the importing user.
		lunch, err := repo.GetSetByID(ctx, userID, result.WheelSets[0].ID)
		if err != nil {
			t.Fatalf("persisted set missing: %v", err)
		}
		if len(lunch.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(lunch.Items))
		}
	})

	t.Run("imported sets get fresh identity and version zero", func(t *testing.T) {
		repo := newFakeWheelRepo()
		svc := NewImportService(repo, nil)

		result, err := svc.ImportLegacySnapshot(ctx, userID, decodeSnapshot(t, `{
			"wheelSets": [{"name": "Lunch", "items": [{"name": "Pizza"}]}]
		}`))
		if err != nil {
			t.Fatalf("import: %v", err)
		}

		set := result.WheelSets[0]
		if set.ID == uuid.Nil || set.Version != 0 {
			t.Fatalf("unexpected identity: id=%v version=%d", set.ID, set.Version)
		}
		if set.UserID != userID {
			t.Fatalf("ownership not assigned to the importer")
		}
		if set.Items[0].SetID != set.ID {
			t.Fatalf("item not parented to the fresh set")
		}
	})

	t.Run("malformed entries are defaulted, never fatal", func(t *testing.T) {
		repo := newFakeWheelRepo()
		svc := NewImportService(repo, nil)

		result, err := svc.ImportLegacySnapshot(ctx, userID, decodeSnapshot(t, `{
			"wheelSets": [{"name": 123, "items": [{}, {"order": "x"}]}]
		}`))
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if result.Imported != 1 {
			t.Fatalf("expected 1 imported, got %d", result.Imported)
		}

		set := result.WheelSets[0]
		if set.Name.String() != "Untitled Wheel" {
			t.Fatalf("expected default name, got %q", set.Name)
		}
		if len(set.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(set.Items))
		}
		if set.Items[0].Name.String() != "Item 1" || set.Items[1].Name.String() != "Item 2" {
			t.Fatalf("placeholder names wrong: %q, %q", set.Items[0].Name, set.Items[1].Name)
		}
		if set.Items[0].Order != 0 || set.Items[1].Order != 1 {
			t.Fatalf("positional orders wrong: %d, %d", set.Items[0].Order, set.Items[1].Order)
		}
	})

	t.Run("missing wheelSets imports nothing and succeeds", func(t *testing.T) {
		repo := newFakeWheelRepo()
		svc := NewImportService(repo, nil)

		result, err := svc.ImportLegacySnapshot(ctx, userID, decodeSnapshot(t, `{"theme": "dark"}`))
		if err != nil {
			t.Fatalf("import: %v", err)
		}
		if result.Imported != 0 || len(result.WheelSets) != 0 {
			t.Fatalf("expected empty result, got %+v", result)
		}
	})

	t.Run("repeated import duplicates rather than merges", func(t *testing.T) {
		repo := newFakeWheelRepo()
		svc := NewImportService(repo, nil)
		payload := decodeSnapshot(t, `{"wheelSets": [{"name": "Lunch"}]}`)

		first, err := svc.ImportLegacySnapshot(ctx, userID, payload)
		if err != nil {
			t.Fatalf("first import: %v", err)
		}
		second, err := svc.ImportLegacySnapshot(ctx, userID, payload)
		if err != nil {
			t.Fatalf("second import: %v", err)
		}
		if first.WheelSets[0].ID == second.WheelSets[0].ID {
			t.Fatal("imports shared an id")
		}

		all, _ := repo.FindSetsByUserID(ctx, userID)
		if len(all) != 2 {
			t.Fatalf("expected 2 persisted sets, got %d", len(all))
		}
	})
}
