package controllers_fx

import (
	"go.uber.org/fx"
	"wander/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountsController),
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewForumController),
	fx.Provide(controllers.NewGroupsController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewSOSController))
