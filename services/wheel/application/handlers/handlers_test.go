package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/pkg/auth"
	appsvcs "github.com/wheelhouse/wheelhouse/services/wheel/application/services"
	wheeldomain "github.com/wheelhouse/wheelhouse/services/wheel/domain"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/repositories"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/spin"
)

// memoryWheelRepo is a minimal in-memory WheelRepository for handler tests.
type memoryWheelRepo struct {
	sets map[uuid.UUID]*models.WheelSet
}

func newMemoryWheelRepo() *memoryWheelRepo {
	return &memoryWheelRepo{sets: make(map[uuid.UUID]*models.WheelSet)}
}

func (r *memoryWheelRepo) clone(set *models.WheelSet) *models.WheelSet {
	dup := *set
	dup.Items = append([]models.WheelItem(nil), set.Items...)
	return &dup
}

func (r *memoryWheelRepo) SaveSet(_ context.Context, set *models.WheelSet) error {
	r.sets[set.ID] = r.clone(set)
	return nil
}

func (r *memoryWheelRepo) FindSetsByUserID(_ context.Context, userID uuid.UUID) ([]*models.WheelSet, error) {
	var out []*models.WheelSet
	for _, set := range r.sets {
		if set.UserID == userID {
			out = append(out, r.clone(set))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryWheelRepo) GetSetByID(_ context.Context, userID, setID uuid.UUID) (*models.WheelSet, error) {
	set, ok := r.sets[setID]
	if !ok || set.UserID != userID {
		return nil, wheeldomain.ErrSetNotFound
	}
	return r.clone(set), nil
}

func (r *memoryWheelRepo) UpdateSet(_ context.Context, set *models.WheelSet) error {
	stored, ok := r.sets[set.ID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	stored.Name = set.Name
	stored.Version = set.Version
	stored.UpdatedAt = set.UpdatedAt
	return nil
}

func (r *memoryWheelRepo) DeleteSet(_ context.Context, set *models.WheelSet) error {
	if _, ok := r.sets[set.ID]; !ok {
		return wheeldomain.ErrSetNotFound
	}
	delete(r.sets, set.ID)
	return nil
}

func (r *memoryWheelRepo) AddItem(_ context.Context, item *models.WheelItem) error {
	set, ok := r.sets[item.SetID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	set.Items = append(set.Items, *item)
	return nil
}

func (r *memoryWheelRepo) AddItems(_ context.Context, setID uuid.UUID, items []*models.WheelItem) error {
	set, ok := r.sets[setID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	for _, item := range items {
		set.Items = append(set.Items, *item)
	}
	return nil
}

func (r *memoryWheelRepo) UpdateItem(_ context.Context, item *models.WheelItem) error {
	set, ok := r.sets[item.SetID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	for i := range set.Items {
		if set.Items[i].ID == item.ID {
			set.Items[i] = *item
			return nil
		}
	}
	return wheeldomain.ErrItemNotFound
}

func (r *memoryWheelRepo) DeleteItem(_ context.Context, setID, itemID uuid.UUID) error {
	set, ok := r.sets[setID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	for i := range set.Items {
		if set.Items[i].ID == itemID {
			set.Items = append(set.Items[:i], set.Items[i+1:]...)
			return nil
		}
	}
	return wheeldomain.ErrItemNotFound
}

func (r *memoryWheelRepo) UpdateOrders(_ context.Context, setID uuid.UUID, assignments []models.OrderAssignment) error {
	set, ok := r.sets[setID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	for _, a := range assignments {
		for i := range set.Items {
			if set.Items[i].ID == a.ID {
				set.Items[i].Order = a.Order
			}
		}
	}
	return nil
}

func (r *memoryWheelRepo) ApplyBatch(_ context.Context, set *models.WheelSet, change repositories.BatchChange) error {
	stored, ok := r.sets[set.ID]
	if !ok {
		return wheeldomain.ErrSetNotFound
	}
	stored.Name = set.Name
	stored.Version = set.Version
	stored.UpdatedAt = set.UpdatedAt

	doomed := make(map[uuid.UUID]bool, len(change.DeleteIDs))
	for _, id := range change.DeleteIDs {
		doomed[id] = true
	}
	kept := stored.Items[:0]
	for _, item := range stored.Items {
		if !doomed[item.ID] {
			kept = append(kept, item)
		}
	}
	stored.Items = kept
	for _, update := range change.Updates {
		for i := range stored.Items {
			if stored.Items[i].ID == update.ID {
				stored.Items[i] = *update
			}
		}
	}
	for _, created := range change.Creates {
		stored.Items = append(stored.Items, *created)
	}
	return nil
}

var _ repositories.WheelRepository = (*memoryWheelRepo)(nil)

// newTestRouter mounts the wheel routes behind a stub identity middleware.
// userID == uuid.Nil simulates an unauthenticated request.
func newTestRouter(repo *memoryWheelRepo, userID uuid.UUID) chi.Router {
	svcs := &appsvcs.Services{
		Wheel:  appsvcs.NewWheelService(repo, nil, spin.NewSeededRNG(1), false),
		Import: appsvcs.NewImportService(repo, nil),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if userID != uuid.Nil {
				req = req.WithContext(auth.WithUserID(req.Context(), userID))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/wheel-sets", func(r chi.Router) {
		r.Get("/", NewListWheelSetsHandler(svcs).Execute)
		r.Post("/", NewCreateWheelSetHandler(svcs).Execute)
		r.Post("/import", NewImportHandler(svcs).Execute)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", NewGetWheelSetHandler(svcs).Execute)
			r.Patch("/", NewUpdateWheelSetHandler(svcs).Execute)
			r.Delete("/", NewDeleteWheelSetHandler(svcs).Execute)
			r.Post("/spin", NewSpinHandler(svcs).Execute)
			r.Put("/batch", NewBatchReplaceHandler(svcs).Execute)
			r.Post("/items", NewAddItemHandler(svcs).Execute)
			r.Post("/items:reorder", NewReorderItemsHandler(svcs).Execute)
			r.Patch("/items/{itemId}", NewUpdateItemHandler(svcs).Execute)
			r.Delete("/items/{itemId}", NewDeleteItemHandler(svcs).Execute)
		})
	})
	return r
}

func do(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response does not decode: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func seedSet(t *testing.T, repo *memoryWheelRepo, userID uuid.UUID, name string, itemNames ...string) *models.WheelSet {
	t.Helper()
	setName, err := models.NewSetName(name)
	if err != nil {
		t.Fatalf("seed name: %v", err)
	}
	set, err := models.NewWheelSet(userID, setName)
	if err != nil {
		t.Fatalf("seed set: %v", err)
	}
	for i, n := range itemNames {
		itemName, err := models.NewItemName(n)
		if err != nil {
			t.Fatalf("seed item name: %v", err)
		}
		item, err := models.NewWheelItem(set.ID, itemName, nil, nil, i)
		if err != nil {
			t.Fatalf("seed item: %v", err)
		}
		set.Items = append(set.Items, *item)
	}
	if err := repo.SaveSet(context.Background(), set); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	return set
}

func TestCreateWheelSetEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("valid request creates at version zero", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodPost, "/wheel-sets", `{"name": "Lunch"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody[WheelSetResponse](t, rec)
		if resp.Name != "Lunch" || resp.Version != 0 {
			t.Fatalf("unexpected response %+v", resp)
		}
		if len(resp.Items) != 0 {
			t.Fatalf("expected empty items, got %d", len(resp.Items))
		}
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodPost, "/wheel-sets", `{}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
	})

	t.Run("invalid json is a bad request", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodPost, "/wheel-sets", `{"name": `)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unauthenticated request rejected", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), uuid.Nil)
		rec := do(t, router, http.MethodPost, "/wheel-sets", `{"name": "Lunch"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestGetWheelSetEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("unknown id is not found", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodGet, "/wheel-sets/"+uuid.NewString(), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("malformed id is indistinguishable from absence", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodGet, "/wheel-sets/not-a-uuid", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("another user's set is not found", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, uuid.New(), "Private")

		router := newTestRouter(repo, userID)
		rec := do(t, router, http.MethodGet, "/wheel-sets/"+set.ID.String(), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("items come back ordered", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch", "a", "b", "c")
		// Scramble storage order; the response must sort by order field.
		stored := repo.sets[set.ID]
		stored.Items[0], stored.Items[2] = stored.Items[2], stored.Items[0]

		router := newTestRouter(repo, userID)
		rec := do(t, router, http.MethodGet, "/wheel-sets/"+set.ID.String(), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		resp := decodeBody[WheelSetResponse](t, rec)
		if resp.Items[0].Name != "a" || resp.Items[1].Name != "b" || resp.Items[2].Name != "c" {
			t.Fatalf("items not ordered: %+v", resp.Items)
		}
	})
}

func TestUpdateWheelSetEndpoint(t *testing.T) {
	userID := uuid.New()
	repo := newMemoryWheelRepo()
	set := seedSet(t, repo, userID, "Lunch")
	router := newTestRouter(repo, userID)

	rec := do(t, router, http.MethodPatch, "/wheel-sets/"+set.ID.String(), `{"name": "Dinner"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[WheelSetResponse](t, rec)
	if resp.Name != "Dinner" || resp.Version != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestDeleteWheelSetEndpoint(t *testing.T) {
	userID := uuid.New()
	repo := newMemoryWheelRepo()
	set := seedSet(t, repo, userID, "Doomed", "a")
	router := newTestRouter(repo, userID)

	rec := do(t, router, http.MethodDelete, "/wheel-sets/"+set.ID.String(), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = do(t, router, http.MethodDelete, "/wheel-sets/"+set.ID.String(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestItemEndpoints(t *testing.T) {
	userID := uuid.New()

	t.Run("add item", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch")
		router := newTestRouter(repo, userID)

		rec := do(t, router, http.MethodPost, "/wheel-sets/"+set.ID.String()+"/items",
			`{"name": "Pizza", "color": "#ff0000", "order": 0}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody[WheelItemResponse](t, rec)
		if resp.Name != "Pizza" || resp.Color == nil || *resp.Color != "#ff0000" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("patch item with explicit null clears description", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch", "Pizza")
		desc := "old"
		repo.sets[set.ID].Items[0].Description = &desc
		itemID := set.Items[0].ID
		router := newTestRouter(repo, userID)

		rec := do(t, router, http.MethodPatch,
			"/wheel-sets/"+set.ID.String()+"/items/"+itemID.String(),
			`{"description": null}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody[WheelItemResponse](t, rec)
		if resp.Description != nil {
			t.Fatalf("description not cleared: %v", *resp.Description)
		}
	})

	t.Run("delete item from the wrong set", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch")
		other := seedSet(t, repo, userID, "Other", "stranger")
		router := newTestRouter(repo, userID)

		rec := do(t, router, http.MethodDelete,
			"/wheel-sets/"+set.ID.String()+"/items/"+other.Items[0].ID.String(), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestReorderEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("valid targets applied", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch", "a", "b")
		router := newTestRouter(repo, userID)

		body, _ := json.Marshal(map[string]any{"items": []map[string]any{
			{"id": set.Items[0].ID, "order": 1},
			{"id": set.Items[1].ID, "order": 0},
		}})
		rec := do(t, router, http.MethodPost, "/wheel-sets/"+set.ID.String()+"/items:reorder", string(body))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody[WheelSetResponse](t, rec)
		if resp.Items[0].Name != "b" || resp.Items[1].Name != "a" {
			t.Fatalf("reorder not applied: %+v", resp.Items)
		}
	})

	t.Run("no valid targets", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch", "a")
		router := newTestRouter(repo, userID)

		body := `{"items": [{"id": "` + uuid.NewString() + `", "order": 0}]}`
		rec := do(t, router, http.MethodPost, "/wheel-sets/"+set.ID.String()+"/items:reorder", body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestBatchReplaceEndpoint(t *testing.T) {
	userID := uuid.New()
	repo := newMemoryWheelRepo()
	set := seedSet(t, repo, userID, "Lunch", "a", "b")
	router := newTestRouter(repo, userID)

	body, _ := json.Marshal(map[string]any{
		"items": []map[string]any{
			{"id": set.Items[0].ID, "name": "a2", "order": 0},
			{"name": "c", "order": 1},
		},
	})
	rec := do(t, router, http.MethodPut, "/wheel-sets/"+set.ID.String()+"/batch", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[WheelSetResponse](t, rec)
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Items))
	}
	if resp.Items[0].Name != "a2" || resp.Items[1].Name != "c" {
		t.Fatalf("membership did not converge: %+v", resp.Items)
	}
}

func TestSpinEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("populated wheel spins", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Lunch", "a", "b", "c", "d")
		router := newTestRouter(repo, userID)

		rec := do(t, router, http.MethodPost, "/wheel-sets/"+set.ID.String()+"/spin", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody[SpinResponse](t, rec)
		if resp.WinnerIndex < 0 || resp.WinnerIndex >= 4 {
			t.Fatalf("winner index %d out of range", resp.WinnerIndex)
		}
		if resp.DurationMs <= 0 {
			t.Fatalf("non-positive duration %d", resp.DurationMs)
		}
	})

	t.Run("empty wheel cannot spin", func(t *testing.T) {
		repo := newMemoryWheelRepo()
		set := seedSet(t, repo, userID, "Empty")
		router := newTestRouter(repo, userID)

		rec := do(t, router, http.MethodPost, "/wheel-sets/"+set.ID.String()+"/spin", "")
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestImportEndpoint(t *testing.T) {
	userID := uuid.New()

	t.Run("degenerate snapshot is defaulted", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodPost, "/wheel-sets/import",
			`{"wheelSets": [{"name": 123, "items": [{}, {"order": "x"}]}]}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody[ImportResponse](t, rec)
		if resp.Imported != 1 {
			t.Fatalf("expected 1 imported, got %d", resp.Imported)
		}
		if resp.WheelSets[0].Name != "Untitled Wheel" {
			t.Fatalf("expected default name, got %q", resp.WheelSets[0].Name)
		}
	})

	t.Run("syntactically invalid json is a bad request", func(t *testing.T) {
		router := newTestRouter(newMemoryWheelRepo(), userID)
		rec := do(t, router, http.MethodPost, "/wheel-sets/import", `{"wheelSets": `)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
