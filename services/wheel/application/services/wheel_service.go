package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/wheelhouse/wheelhouse/pkg/cache"
	wheeldomain "github.com/wheelhouse/wheelhouse/services/wheel/domain"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/repositories"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/spin"
)

// BatchInput is the desired end state a batch replace converges to. A nil
// Items pointer means "leave membership alone"; an empty non-nil slice means
// "delete every item".
type BatchInput struct {
	Name  models.Field[string]
	Items *[]models.ReplacementItem
}

// SpinOutcome is the server-side echo of one spin: the committed winner and
// the animation parameters a client needs to replay it. Nothing is persisted.
type SpinOutcome struct {
	WinnerIndex   int
	Item          models.WheelItem
	TerminalAngle float64
	Duration      time.Duration
}

// WheelService orchestrates the wheel-set lifecycle. Every operation is
// scoped by the authenticated user; ownership failures surface as
// ErrSetNotFound. Event publishing is handled by the repository layer
// (outbox pattern). Single-set reads are served from Redis when available.
type WheelService struct {
	repo   repositories.WheelRepository
	cache  *pkgcache.WheelSetCache
	rng    spin.RandomSource
	strict bool // reject stale versions with ErrVersionConflict
}

// NewWheelService returns a WheelService wired with the given repository and
// cache. strict selects strict versioning; the default deployment runs
// advisory (stale versions reconcile silently).
func NewWheelService(repo repositories.WheelRepository, cache *pkgcache.WheelSetCache, rng spin.RandomSource, strict bool) *WheelService {
	if rng == nil {
		rng = spin.DefaultRNG()
	}
	return &WheelService{repo: repo, cache: cache, rng: rng, strict: strict}
}

// List returns all sets owned by the user, newest first, items ordered.
func (s *WheelService) List(ctx context.Context, userID uuid.UUID) ([]*models.WheelSet, error) {
	sets, err := s.repo.FindSetsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wheel sets: %w", err)
	}
	return sets, nil
}

// Create validates the name and persists an empty set at version 0.
// The repository publishes WheelSetCreatedEvent.
func (s *WheelService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.WheelSet, error) {
	setName, err := models.NewSetName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wheeldomain.ErrInvalidSetName, err)
	}

	set, err := models.NewWheelSet(userID, setName)
	if err != nil {
		return nil, fmt.Errorf("create wheel set: %w", err)
	}

	if err := s.repo.SaveSet(ctx, set); err != nil {
		return nil, fmt.Errorf("save wheel set: %w", err)
	}
	return set, nil
}

// Get retrieves one set using a read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *WheelService) Get(ctx context.Context, userID, setID uuid.UUID) (*models.WheelSet, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID, setID); err == nil {
			return fromCached(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error; fall through to Postgres.
			_ = err
		}
	}

	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get wheel set: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), toCached(set))
		}()
	}
	return set, nil
}

// Update applies a partial update to the set itself. The new version is
// (suppliedVersion ?? currentVersion) + 1. In advisory mode a stale supplied
// version is reconciled silently; in strict mode it fails with
// ErrVersionConflict and nothing changes.
func (s *WheelService) Update(ctx context.Context, userID, setID uuid.UUID, patch models.SetPatch) (*models.WheelSet, error) {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get wheel set: %w", err)
	}

	if name, ok := patch.Name.Value(); ok {
		setName, err := models.NewSetName(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", wheeldomain.ErrInvalidSetName, err)
		}
		set.Name = setName
	}

	base := set.Version
	if supplied, ok := patch.Version.Value(); ok {
		if s.strict && supplied != set.Version {
			return nil, fmt.Errorf("%w: have %d, client sent %d", wheeldomain.ErrVersionConflict, set.Version, supplied)
		}
		base = supplied
	}
	set.Version = base + 1
	set.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateSet(ctx, set); err != nil {
		return nil, fmt.Errorf("update wheel set: %w", err)
	}
	s.invalidate(userID, setID)
	return set, nil
}

// Delete removes the set and cascades to all child items atomically.
// Deleting an already-deleted set fails with ErrSetNotFound.
// The repository publishes WheelSetDeletedEvent.
func (s *WheelService) Delete(ctx context.Context, userID, setID uuid.UUID) error {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return fmt.Errorf("get wheel set: %w", err)
	}
	if err := s.repo.DeleteSet(ctx, set); err != nil {
		return fmt.Errorf("delete wheel set: %w", err)
	}
	s.invalidate(userID, setID)
	return nil
}

// AddItem appends an option to the set. Order is caller-supplied and not
// validated against siblings; duplicates and gaps are allowed.
func (s *WheelService) AddItem(ctx context.Context, userID, setID uuid.UUID, name string, description, color *string, order int) (*models.WheelItem, error) {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get wheel set: %w", err)
	}

	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wheeldomain.ErrInvalidItemName, err)
	}

	item, err := models.NewWheelItem(set.ID, itemName, description, color, order)
	if err != nil {
		return nil, fmt.Errorf("create wheel item: %w", err)
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add wheel item: %w", err)
	}
	s.invalidate(userID, setID)
	return item, nil
}

// UpdateItem applies a three-state partial update to one item: absent fields
// are left unchanged, explicit nulls clear description/color. The item must
// belong to the named set or the call fails with ErrItemNotFound.
func (s *WheelService) UpdateItem(ctx context.Context, userID, setID, itemID uuid.UUID, patch models.ItemPatch) (*models.WheelItem, error) {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get wheel set: %w", err)
	}
	item := set.ItemByID(itemID)
	if item == nil {
		return nil, wheeldomain.ErrItemNotFound
	}

	if name, ok := patch.Name.Value(); ok {
		itemName, err := models.NewItemName(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", wheeldomain.ErrInvalidItemName, err)
		}
		item.Name = itemName
	}
	applyOptional(&item.Description, patch.Description)
	applyOptional(&item.Color, patch.Color)
	if order, ok := patch.Order.Value(); ok {
		item.Order = order
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("update wheel item: %w", err)
	}
	s.invalidate(userID, setID)
	return item, nil
}

// DeleteItem removes one item after verifying it belongs to the named set.
// An item id alone is never a sufficient credential.
func (s *WheelService) DeleteItem(ctx context.Context, userID, setID, itemID uuid.UUID) error {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return fmt.Errorf("get wheel set: %w", err)
	}
	if set.ItemByID(itemID) == nil {
		return wheeldomain.ErrItemNotFound
	}
	if err := s.repo.DeleteItem(ctx, setID, itemID); err != nil {
		return fmt.Errorf("delete wheel item: %w", err)
	}
	s.invalidate(userID, setID)
	return nil
}

// Reorder applies caller-supplied (id, order) pairs in one transaction.
// Pairs referencing items outside the set are silently dropped; the call
// fails with ErrNoReorderTargets only when nothing valid remains.
// Returns the refreshed set.
func (s *WheelService) Reorder(ctx context.Context, userID, setID uuid.UUID, assignments []models.OrderAssignment) (*models.WheelSet, error) {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get wheel set: %w", err)
	}

	valid := make([]models.OrderAssignment, 0, len(assignments))
	for _, a := range assignments {
		if set.ItemByID(a.ID) != nil {
			valid = append(valid, a)
		}
	}
	if len(valid) == 0 {
		return nil, wheeldomain.ErrNoReorderTargets
	}

	if err := s.repo.UpdateOrders(ctx, setID, valid); err != nil {
		return nil, fmt.Errorf("reorder wheel items: %w", err)
	}
	s.invalidate(userID, setID)

	refreshed, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("reload wheel set: %w", err)
	}
	return refreshed, nil
}

// BatchReplace converges the set to the supplied desired state in one
// transaction. When Items is supplied: stored items absent from the list are
// deleted, recognized ids are updated in place, entries with no id (or an id
// the set no longer contains) are created fresh. A supplied name renames the
// set and bumps its version. Returns the refreshed set ordered by order.
func (s *WheelService) BatchReplace(ctx context.Context, userID, setID uuid.UUID, input BatchInput) (*models.WheelSet, error) {
	set, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("get wheel set: %w", err)
	}

	if name, ok := input.Name.Value(); ok {
		setName, err := models.NewSetName(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", wheeldomain.ErrInvalidSetName, err)
		}
		set.Name = setName
		set.Version++
	}
	set.UpdatedAt = time.Now().UTC()

	var change repositories.BatchChange
	if input.Items != nil {
		change, err = diffItems(set, *input.Items)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.ApplyBatch(ctx, set, change); err != nil {
		return nil, fmt.Errorf("apply batch: %w", err)
	}
	s.invalidate(userID, setID)

	refreshed, err := s.repo.GetSetByID(ctx, userID, setID)
	if err != nil {
		return nil, fmt.Errorf("reload wheel set: %w", err)
	}
	return refreshed, nil
}

// Spin runs one full spin cycle server-side and echoes the outcome. The
// winner is committed before any animation frame; nothing is persisted.
func (s *WheelService) Spin(ctx context.Context, userID, setID uuid.UUID) (*SpinOutcome, error) {
	set, err := s.Get(ctx, userID, setID)
	if err != nil {
		return nil, err
	}
	set.SortItems()

	session := spin.NewSession(s.rng)
	result, err := session.Start(len(set.Items))
	if err != nil {
		return nil, err
	}

	return &SpinOutcome{
		WinnerIndex:   result.Winner,
		Item:          set.Items[result.Winner],
		TerminalAngle: result.TerminalAngle,
		Duration:      result.Duration,
	}, nil
}

// diffItems splits the desired item list into deletes, in-place updates, and
// fresh creates relative to the set's current membership.
func diffItems(set *models.WheelSet, desired []models.ReplacementItem) (repositories.BatchChange, error) {
	var change repositories.BatchChange

	kept := make(map[uuid.UUID]bool, len(desired))
	for _, entry := range desired {
		if entry.ID != nil && set.ItemByID(*entry.ID) != nil {
			kept[*entry.ID] = true
			change.Updates = append(change.Updates, &models.WheelItem{
				ID:          *entry.ID,
				SetID:       set.ID,
				Name:        entry.Name,
				Description: entry.Description,
				Color:       entry.Color,
				Order:       entry.Order,
			})
			continue
		}
		created, err := models.NewWheelItem(set.ID, entry.Name, entry.Description, entry.Color, entry.Order)
		if err != nil {
			return repositories.BatchChange{}, fmt.Errorf("create replacement item: %w", err)
		}
		change.Creates = append(change.Creates, created)
	}

	for _, existing := range set.Items {
		if !kept[existing.ID] {
			change.DeleteIDs = append(change.DeleteIDs, existing.ID)
		}
	}
	return change, nil
}

// applyOptional writes a three-state patch field into an optional attribute:
// absent leaves it alone, null clears it, a value replaces it.
func applyOptional(dst **string, f models.Field[string]) {
	if !f.Present() {
		return
	}
	if f.IsNull() {
		*dst = nil
		return
	}
	v, _ := f.Value()
	*dst = &v
}

func (s *WheelService) invalidate(userID, setID uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), userID, setID)
	}
}

func toCached(set *models.WheelSet) *pkgcache.CachedWheelSet {
	items := make([]pkgcache.CachedWheelItem, len(set.Items))
	for i, it := range set.Items {
		items[i] = pkgcache.CachedWheelItem{
			ID:          it.ID,
			Name:        it.Name.String(),
			Description: it.Description,
			Color:       it.Color,
			Order:       it.Order,
		}
	}
	return &pkgcache.CachedWheelSet{
		ID:        set.ID,
		UserID:    set.UserID,
		Name:      set.Name.String(),
		Version:   set.Version,
		Items:     items,
		CreatedAt: set.CreatedAt,
		UpdatedAt: set.UpdatedAt,
	}
}

func fromCached(cached *pkgcache.CachedWheelSet) *models.WheelSet {
	items := make([]models.WheelItem, len(cached.Items))
	for i, it := range cached.Items {
		items[i] = models.WheelItem{
			ID:          it.ID,
			SetID:       cached.ID,
			Name:        models.ItemName(it.Name),
			Description: it.Description,
			Color:       it.Color,
			Order:       it.Order,
		}
	}
	return &models.WheelSet{
		ID:        cached.ID,
		UserID:    cached.UserID,
		Name:      models.SetName(cached.Name),
		Version:   cached.Version,
		Items:     items,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}
}
