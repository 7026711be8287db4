package services

import (
	"context"

	"wander/internal/models/db_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type DestinationServiceInterface interface {
	SearchDestinations(ctx context.Context, name, region string, page, pageSize int) ([]response_models.DestinationResponse, error)
	GetDestinationById(ctx context.Context, destinationId string) (*response_models.DestinationResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationServiceInterface {
	return &DestinationService{destinationRepo: destinationRepo}
}

func (d *DestinationService) SearchDestinations(ctx context.Context, name, region string, page, pageSize int) ([]response_models.DestinationResponse, error) {
	destinations, err := d.destinationRepo.Search(ctx, name, region, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		out = append(out, buildDestinationResponse(&destinations[i]))
	}
	return out, nil
}

func (d *DestinationService) GetDestinationById(ctx context.Context, destinationId string) (*response_models.DestinationResponse, error) {
	destination, err := d.destinationRepo.GetById(ctx, destinationId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	out := buildDestinationResponse(destination)
	return &out, nil
}

func buildDestinationResponse(destination *db_models.Destination) response_models.DestinationResponse {
	tags := make([]string, 0, len(destination.Tags))
	for _, tag := range destination.Tags {
		tags = append(tags, tag.Name)
	}

	return response_models.DestinationResponse{
		ID:          destination.ID.String(),
		Name:        destination.Name,
		Region:      destination.Region,
		Country:     destination.Country,
		Latitude:    destination.Latitude,
		Longitude:   destination.Longitude,
		Description: destination.Description,
		Images:      append([]string{}, destination.Images...),
		Tags:        tags,
	}
}
