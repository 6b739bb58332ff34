// internal/repositories/itinerary_repository.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "wanderly/internal/models/db_models"
)

type ItineraryRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Itinerary, error)
	Create(ctx context.Context, itinerary *dbm.Itinerary) error
	// FindForAccount returns nil, nil when the row is missing or owned by
	// someone else.
	FindForAccount(ctx context.Context, id, accountID uuid.UUID) (*dbm.Itinerary, error)
	// UpdateForAccount overwrites every column and reports whether a row
	// owned by itinerary.AccountID matched.
	UpdateForAccount(ctx context.Context, itinerary *dbm.Itinerary) (bool, error)
	UpdateDays(ctx context.Context, itinerary *dbm.Itinerary) error
	DeleteForAccount(ctx context.Context, id, accountID uuid.UUID) (bool, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Itinerary, error) {
	var itineraries []dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) Create(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindForAccount(ctx context.Context, id, accountID uuid.UUID) (*dbm.Itinerary, error) {
	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) UpdateForAccount(ctx context.Context, itinerary *dbm.Itinerary) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(itinerary).
		Where("account_id = ?", itinerary.AccountID).
		Select("*").
		Omit("id", "account_id", "created_at", "deleted_at", clause.Associations).
		Updates(itinerary)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *itineraryRepository) UpdateDays(ctx context.Context, itinerary *dbm.Itinerary) error {
	return r.db.WithContext(ctx).
		Model(itinerary).
		Select("days").
		Updates(itinerary).Error
}

// DeleteForAccount soft deletes the itinerary and hard deletes its
// transcript in one transaction.
func (r *itineraryRepository) DeleteForAccount(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND account_id = ?", id, accountID).Delete(&dbm.Itinerary{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Unscoped().
			Where("itinerary_id = ?", id).
			Delete(&dbm.AssistantMessage{}).Error
	})
	return deleted, err
}
