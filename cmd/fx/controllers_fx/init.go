package controllers_fx

import (
	"go.uber.org/fx"

	"itinera/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController))
