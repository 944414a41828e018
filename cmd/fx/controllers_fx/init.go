package controllers_fx

import (
	"go.uber.org/fx"

	"wayfare/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewChatController))
