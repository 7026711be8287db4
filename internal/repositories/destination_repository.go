package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wander/internal/models/db_models"
)

type DestinationRepository interface {
	GetById(ctx context.Context, destinationId string) (*db_models.Destination, error)
	Search(ctx context.Context, name, region string, page, pageSize int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetById(ctx context.Context, destinationId string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Where("id = ?", destinationId).
		Preload("Tags").
		First(&destination).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) Search(ctx context.Context, name, region string, page, pageSize int) ([]db_models.Destination, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Destination{}).Preload("Tags")

	if name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if region != "" {
		q = q.Where("region = ?", region)
	}

	var destinations []db_models.Destination
	err := q.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&destinations).Error

	if err != nil {
		return nil, err
	}

	return destinations, nil
}
