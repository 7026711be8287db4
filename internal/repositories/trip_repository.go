package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) error
	GetById(ctx context.Context, tripId string) (*db_models.Trip, error)
	ListByAccount(ctx context.Context, accountId string, page, pageSize int) ([]db_models.Trip, error)
	UpdateStatus(ctx context.Context, tripId string, status string) error
	AddMember(ctx context.Context, member *db_models.TripMember) error
	IsMember(ctx context.Context, tripId, accountId string) (bool, error)
	CountMembers(ctx context.Context, tripId string) (int64, error)
	// SpentAmounts returns the summed cost amount per trip, one grouped query
	// instead of loading every cost row.
	SpentAmounts(ctx context.Context, tripIds []uuid.UUID) (map[uuid.UUID]float64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetById(ctx context.Context, tripId string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) ListByAccount(ctx context.Context, accountId string, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", accountId).
		Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) UpdateStatus(ctx context.Context, tripId string, status string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", tripId).
		Update("status", status).Error
}

func (r *tripRepository) AddMember(ctx context.Context, member *db_models.TripMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *tripRepository) IsMember(ctx context.Context, tripId, accountId string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.TripMember{}).
		Where("trip_id = ? AND account_id = ?", tripId, accountId).
		Count(&count).Error

	return count > 0, err
}

func (r *tripRepository) CountMembers(ctx context.Context, tripId string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.TripMember{}).
		Where("trip_id = ?", tripId).
		Count(&count).Error

	return count, err
}

func (r *tripRepository) SpentAmounts(ctx context.Context, tripIds []uuid.UUID) (map[uuid.UUID]float64, error) {
	if len(tripIds) == 0 {
		return map[uuid.UUID]float64{}, nil
	}

	type row struct {
		TripID uuid.UUID
		Total  float64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&db_models.Cost{}).
		Select("routes.trip_id AS trip_id, COALESCE(SUM(costs.amount), 0) AS total").
		Joins("JOIN routes ON costs.route_id = routes.id").
		Where("routes.trip_id IN ?", tripIds).
		Group("routes.trip_id").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		out[r.TripID] = r.Total
	}
	return out, nil
}
