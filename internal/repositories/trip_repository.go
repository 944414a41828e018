package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wayfare/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}
