package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUserId(ctx context.Context, page int, pageSize int, userId string) ([]db_models.Trip, error)
	FindByIdAndUserId(ctx context.Context, tripId string, userId string) (*db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	DeleteByIdAndUserId(ctx context.Context, tripId string, userId string) (bool, error)
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

func (r *tripRepository) ListByUserId(ctx context.Context, page int, pageSize int, userId string) ([]db_models.Trip, error) {
	var trips []db_models.Trip

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("start_date").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) FindByIdAndUserId(ctx context.Context, tripId string, userId string) (*db_models.Trip, error) {
	var trip db_models.Trip

	err := r.db.WithContext(ctx).
		First(&trip, "id = ? AND user_id = ?", tripId, userId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) DeleteByIdAndUserId(ctx context.Context, tripId string, userId string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		Delete(&db_models.Trip{})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
