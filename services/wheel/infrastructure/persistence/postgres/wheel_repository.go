// Package postgres implements the wheel domain's persistence interfaces with
// hand-written SQL over the pgx stdlib driver. Ownership scoping lives in the
// WHERE clauses: every set read carries user_id, so cross-tenant ids behave
// exactly like missing rows.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/wheelhouse/wheelhouse/pkg/database"
	"github.com/wheelhouse/wheelhouse/pkg/events"
	wheeldomain "github.com/wheelhouse/wheelhouse/services/wheel/domain"
	domainevents "github.com/wheelhouse/wheelhouse/services/wheel/domain/events"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/repositories"
)

// WheelRepository implements repositories.WheelRepository against PostgreSQL.
type WheelRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewWheelRepository returns a WheelRepository backed by the given connection
// pool and event bus. The bus publishes lifecycle events inside the same
// transaction as the write (outbox pattern); it may be nil in tests.
func NewWheelRepository(db *database.Database, bus *events.EventBus) *WheelRepository {
	return &WheelRepository{db: db, bus: bus}
}

// SaveSet persists a new WheelSet and publishes WheelSetCreatedEvent within
// the same transaction.
func (r *WheelRepository) SaveSet(ctx context.Context, set *models.WheelSet) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO wheel_sets (id, user_id, name, version, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			set.ID, set.UserID, set.Name.String(), set.Version, set.CreatedAt, set.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert wheel set: %w", err)
		}
		return r.publishTx(tx, domainevents.TopicWheelSetCreated, domainevents.WheelSetCreatedEvent{
			EventID:    uuid.New(),
			Version:    1,
			SetID:      set.ID,
			UserID:     set.UserID,
			Name:       set.Name.String(),
			OccurredAt: set.CreatedAt,
		})
	})
}

// FindSetsByUserID returns all sets owned by the user, newest first, each
// with its items loaded and ordered ascending by item_order.
func (r *WheelRepository) FindSetsByUserID(ctx context.Context, userID uuid.UUID) ([]*models.WheelSet, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, user_id, name, version, created_at, updated_at
		 FROM wheel_sets
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query wheel sets: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var sets []*models.WheelSet
	byID := map[uuid.UUID]*models.WheelSet{}
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
		byID[set.ID] = set
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wheel sets: %w", err)
	}

	itemRows, err := r.db.DB().QueryContext(ctx,
		`SELECT i.id, i.set_id, i.name, i.description, i.color, i.item_order
		 FROM wheel_items i
		 JOIN wheel_sets s ON s.id = i.set_id
		 WHERE s.user_id = $1
		 ORDER BY i.item_order ASC, i.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query wheel items: %w", err)
	}
	defer itemRows.Close() //nolint:errcheck

	for itemRows.Next() {
		item, err := scanItem(itemRows)
		if err != nil {
			return nil, err
		}
		if set, ok := byID[item.SetID]; ok {
			set.Items = append(set.Items, *item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wheel items: %w", err)
	}
	return sets, nil
}

// GetSetByID retrieves one set with its items. Returns ErrSetNotFound when
// the id does not exist or belongs to another user.
func (r *WheelRepository) GetSetByID(ctx context.Context, userID, setID uuid.UUID) (*models.WheelSet, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT id, user_id, name, version, created_at, updated_at
		 FROM wheel_sets
		 WHERE id = $1 AND user_id = $2`,
		setID, userID,
	)
	set, err := scanSet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wheeldomain.ErrSetNotFound
		}
		return nil, err
	}

	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, set_id, name, description, color, item_order
		 FROM wheel_items
		 WHERE set_id = $1
		 ORDER BY item_order ASC, id ASC`,
		setID,
	)
	if err != nil {
		return nil, fmt.Errorf("query wheel items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		set.Items = append(set.Items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wheel items: %w", err)
	}
	return set, nil
}

// UpdateSet persists the set row (name, version, updated_at) of a loaded aggregate.
func (r *WheelRepository) UpdateSet(ctx context.Context, set *models.WheelSet) error {
	res, err := r.db.DB().ExecContext(ctx,
		`UPDATE wheel_sets SET name = $1, version = $2, updated_at = $3
		 WHERE id = $4 AND user_id = $5`,
		set.Name.String(), set.Version, set.UpdatedAt, set.ID, set.UserID,
	)
	if err != nil {
		return fmt.Errorf("update wheel set: %w", err)
	}
	return requireRow(res)
}

// DeleteSet removes all child items then the set in one transaction and
// publishes WheelSetDeletedEvent. A second delete of the same id reports
// ErrSetNotFound.
func (r *WheelRepository) DeleteSet(ctx context.Context, set *models.WheelSet) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM wheel_items WHERE set_id = $1`, set.ID,
		); err != nil {
			return fmt.Errorf("delete wheel items: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`DELETE FROM wheel_sets WHERE id = $1 AND user_id = $2`,
			set.ID, set.UserID,
		)
		if err != nil {
			return fmt.Errorf("delete wheel set: %w", err)
		}
		if err := requireRow(res); err != nil {
			return err
		}

		return r.publishTx(tx, domainevents.TopicWheelSetDeleted, domainevents.WheelSetDeletedEvent{
			EventID:    uuid.New(),
			Version:    1,
			SetID:      set.ID,
			UserID:     set.UserID,
			ItemCount:  len(set.Items),
			OccurredAt: time.Now().UTC(),
		})
	})
}

// AddItem persists a new item and bumps the parent set's updated_at in the
// same transaction.
func (r *WheelRepository) AddItem(ctx context.Context, item *models.WheelItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := insertItem(ctx, tx, item); err != nil {
			return err
		}
		return touchSet(ctx, tx, item.SetID)
	})
}

// AddItems bulk-inserts items for a single set in one transaction.
func (r *WheelRepository) AddItems(ctx context.Context, setID uuid.UUID, items []*models.WheelItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			if err := insertItem(ctx, tx, item); err != nil {
				return err
			}
		}
		return touchSet(ctx, tx, setID)
	})
}

// UpdateItem persists changes to an existing item and bumps the parent set's
// updated_at.
func (r *WheelRepository) UpdateItem(ctx context.Context, item *models.WheelItem) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE wheel_items SET name = $1, description = $2, color = $3, item_order = $4
			 WHERE id = $5 AND set_id = $6`,
			item.Name.String(), item.Description, item.Color, item.Order, item.ID, item.SetID,
		)
		if err != nil {
			return fmt.Errorf("update wheel item: %w", err)
		}
		if err := requireItemRow(res); err != nil {
			return err
		}
		return touchSet(ctx, tx, item.SetID)
	})
}

// DeleteItem removes one item scoped to its set and bumps the set's updated_at.
func (r *WheelRepository) DeleteItem(ctx context.Context, setID, itemID uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM wheel_items WHERE id = $1 AND set_id = $2`,
			itemID, setID,
		)
		if err != nil {
			return fmt.Errorf("delete wheel item: %w", err)
		}
		if err := requireItemRow(res); err != nil {
			return err
		}
		return touchSet(ctx, tx, setID)
	})
}

// UpdateOrders applies all order assignments in one transaction so readers
// never observe a partially reordered list.
func (r *WheelRepository) UpdateOrders(ctx context.Context, setID uuid.UUID, assignments []models.OrderAssignment) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, a := range assignments {
			if _, err := tx.ExecContext(ctx,
				`UPDATE wheel_items SET item_order = $1 WHERE id = $2 AND set_id = $3`,
				a.Order, a.ID, setID,
			); err != nil {
				return fmt.Errorf("reorder wheel item: %w", err)
			}
		}
		return touchSet(ctx, tx, setID)
	})
}

// ApplyBatch persists the set row together with the item diff in one
// transaction: all intended mutations become visible together or not at all.
func (r *WheelRepository) ApplyBatch(ctx context.Context, set *models.WheelSet, change repositories.BatchChange) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE wheel_sets SET name = $1, version = $2, updated_at = $3
			 WHERE id = $4 AND user_id = $5`,
			set.Name.String(), set.Version, set.UpdatedAt, set.ID, set.UserID,
		)
		if err != nil {
			return fmt.Errorf("update wheel set: %w", err)
		}
		if err := requireRow(res); err != nil {
			return err
		}

		for _, id := range change.DeleteIDs {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM wheel_items WHERE id = $1 AND set_id = $2`, id, set.ID,
			); err != nil {
				return fmt.Errorf("delete wheel item: %w", err)
			}
		}
		for _, item := range change.Updates {
			if _, err := tx.ExecContext(ctx,
				`UPDATE wheel_items SET name = $1, description = $2, color = $3, item_order = $4
				 WHERE id = $5 AND set_id = $6`,
				item.Name.String(), item.Description, item.Color, item.Order, item.ID, item.SetID,
			); err != nil {
				return fmt.Errorf("update wheel item: %w", err)
			}
		}
		for _, item := range change.Creates {
			if err := insertItem(ctx, tx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertItem(ctx context.Context, tx *sql.Tx, item *models.WheelItem) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO wheel_items (id, set_id, name, description, color, item_order)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.SetID, item.Name.String(), item.Description, item.Color, item.Order,
	); err != nil {
		return fmt.Errorf("insert wheel item: %w", err)
	}
	return nil
}

// touchSet bumps updated_at so membership mutations are visible on the set row.
func touchSet(ctx context.Context, tx *sql.Tx, setID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE wheel_sets SET updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), setID,
	); err != nil {
		return fmt.Errorf("touch wheel set: %w", err)
	}
	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return wheeldomain.ErrSetNotFound
	}
	return nil
}

func requireItemRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return wheeldomain.ErrItemNotFound
	}
	return nil
}

func (r *WheelRepository) publishTx(tx *sql.Tx, topic string, event any) error {
	if r.bus == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSet(row rowScanner) (*models.WheelSet, error) {
	var (
		set  models.WheelSet
		name string
	)
	if err := row.Scan(&set.ID, &set.UserID, &name, &set.Version, &set.CreatedAt, &set.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan wheel set: %w", err)
	}
	set.Name = models.SetName(name)
	set.Items = []models.WheelItem{}
	return &set, nil
}

func scanItem(row rowScanner) (*models.WheelItem, error) {
	var (
		item models.WheelItem
		name string
	)
	if err := row.Scan(&item.ID, &item.SetID, &name, &item.Description, &item.Color, &item.Order); err != nil {
		return nil, fmt.Errorf("scan wheel item: %w", err)
	}
	item.Name = models.ItemName(name)
	return &item, nil
}
