package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "wanderly/internal/models/db_models"
)

type AssistantMessageRepository interface {
	Append(ctx context.Context, messages []*dbm.AssistantMessage) error
	// ListByItinerary returns the most recent limit messages, oldest first.
	ListByItinerary(ctx context.Context, itineraryID uuid.UUID, limit int) ([]dbm.AssistantMessage, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type assistantMessageRepository struct {
	db *gorm.DB
}

func NewAssistantMessageRepository(db *gorm.DB) AssistantMessageRepository {
	return &assistantMessageRepository{db: db}
}

func (r *assistantMessageRepository) Append(ctx context.Context, messages []*dbm.AssistantMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&messages).Error
}

func (r *assistantMessageRepository) ListByItinerary(ctx context.Context, itineraryID uuid.UUID, limit int) ([]dbm.AssistantMessage, error) {
	var messages []dbm.AssistantMessage
	err := r.db.WithContext(ctx).
		Where("itinerary_id = ?", itineraryID).
		Order("sequence DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *assistantMessageRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("created_at < ?", cutoff.Unix()).
		Delete(&dbm.AssistantMessage{})
	return res.RowsAffected, res.Error
}
