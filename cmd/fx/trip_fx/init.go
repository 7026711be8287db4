package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideRouteRepo,
	provideCostRepo,
	provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideCostRepo(db *gorm.DB) repositories.CostRepository {
	return repositories.NewCostRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	routeRepo repositories.RouteRepository,
	costRepo repositories.CostRepository,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, routeRepo, costRepo)
}
