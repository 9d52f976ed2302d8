package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgevents "github.com/wheelhouse/wheelhouse/pkg/events"
	domainevents "github.com/wheelhouse/wheelhouse/services/wheel/domain/events"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/models"
	"github.com/wheelhouse/wheelhouse/services/wheel/domain/repositories"
	domainsvcs "github.com/wheelhouse/wheelhouse/services/wheel/domain/services"
)

// ImportResult summarizes one legacy snapshot import.
type ImportResult struct {
	Imported  int
	WheelSets []*models.WheelSet
}

// ImportService converts legacy client-local snapshots into freshly created
// wheel sets. Normalization is tolerant: malformed entries are defaulted,
// never fatal. Every imported set gets new ids; only name, item name, color,
// and order survive the migration.
type ImportService struct {
	repo repositories.WheelRepository
	bus  *pkgevents.EventBus
}

// NewImportService returns an ImportService. bus may be nil (tests); the
// completion event is then skipped.
func NewImportService(repo repositories.WheelRepository, bus *pkgevents.EventBus) *ImportService {
	return &ImportService{repo: repo, bus: bus}
}

// ImportLegacySnapshot creates one independent WheelSet per entry of the
// snapshot's wheelSets array. A missing or non-array wheelSets imports zero
// sets and succeeds. Publishes ImportCompletedEvent once at the end.
func (s *ImportService) ImportLegacySnapshot(ctx context.Context, userID uuid.UUID, payload map[string]any) (*ImportResult, error) {
	normalized := domainsvcs.NormalizeSnapshot(payload)

	result := &ImportResult{WheelSets: []*models.WheelSet{}}
	for _, entry := range normalized {
		set, err := models.NewWheelSet(userID, entry.Name)
		if err != nil {
			return nil, fmt.Errorf("create imported set: %w", err)
		}
		if err := s.repo.SaveSet(ctx, set); err != nil {
			return nil, fmt.Errorf("save imported set: %w", err)
		}

		items := make([]*models.WheelItem, len(entry.Items))
		for i, it := range entry.Items {
			item, err := models.NewWheelItem(set.ID, it.Name, nil, it.Color, it.Order)
			if err != nil {
				return nil, fmt.Errorf("create imported item: %w", err)
			}
			items[i] = item
		}
		if len(items) > 0 {
			if err := s.repo.AddItems(ctx, set.ID, items); err != nil {
				return nil, fmt.Errorf("save imported items: %w", err)
			}
		}

		for _, item := range items {
			set.Items = append(set.Items, *item)
		}
		set.SortItems()
		result.WheelSets = append(result.WheelSets, set)
	}
	result.Imported = len(result.WheelSets)

	if err := s.publishCompleted(ctx, userID, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ImportService) publishCompleted(ctx context.Context, userID uuid.UUID, result *ImportResult) error {
	if s.bus == nil || result.Imported == 0 {
		return nil
	}

	setIDs := make([]uuid.UUID, len(result.WheelSets))
	for i, set := range result.WheelSets {
		setIDs[i] = set.ID
	}
	event := domainevents.ImportCompletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		UserID:     userID,
		SetIDs:     setIDs,
		Imported:   result.Imported,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	if err := s.bus.Publish(ctx, domainevents.TopicImportCompleted, msg); err != nil {
		return fmt.Errorf("publish import completed: %w", err)
	}
	return nil
}
