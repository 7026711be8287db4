package destination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(destinationRepo repositories.DestinationRepository) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo)
}
