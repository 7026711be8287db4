package repositories

import (
	"context"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type CostRepository interface {
	Create(ctx context.Context, cost *db_models.Cost) error
	GetByRouteId(ctx context.Context, routeId string) ([]db_models.Cost, error)
	// DeleteById removes the cost and reports how many rows matched. Zero
	// rows is not an error; callers treat a retried delete as already done.
	DeleteById(ctx context.Context, costId string) (int64, error)
}

type costRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) CostRepository {
	return &costRepository{db: db}
}

func (r *costRepository) Create(ctx context.Context, cost *db_models.Cost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

func (r *costRepository) GetByRouteId(ctx context.Context, routeId string) ([]db_models.Cost, error) {
	var costs []db_models.Cost
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeId).
		Find(&costs).Error

	if err != nil {
		return nil, err
	}

	return costs, nil
}

func (r *costRepository) DeleteById(ctx context.Context, costId string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", costId).
		Delete(&db_models.Cost{})

	return res.RowsAffected, res.Error
}
