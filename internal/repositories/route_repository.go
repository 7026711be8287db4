package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type RouteRepository interface {
	Create(ctx context.Context, route *db_models.Route) error
	CreateBatch(ctx context.Context, routes []db_models.Route) error
	GetById(ctx context.Context, routeId string) (*db_models.Route, error)
	GetByTripId(ctx context.Context, tripId string) ([]db_models.Route, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) Create(ctx context.Context, route *db_models.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *routeRepository) CreateBatch(ctx context.Context, routes []db_models.Route) error {
	if len(routes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&routes).Error
}

func (r *routeRepository) GetById(ctx context.Context, routeId string) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).
		Where("id = ?", routeId).
		First(&route).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &route, nil
}

func (r *routeRepository) GetByTripId(ctx context.Context, tripId string) ([]db_models.Route, error) {
	var routes []db_models.Route
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Find(&routes).Error

	if err != nil {
		return nil, err
	}

	return routes, nil
}
