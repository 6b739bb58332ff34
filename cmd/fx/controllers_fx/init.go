package controllers_fx

import (
	"go.uber.org/fx"
	"wanderly/internal/api/controllers"
	"wanderly/internal/infra"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(provideAdminController))

func provideAdminController(janitor *infra.Janitor) *controllers.AdminController {
	return controllers.NewAdminController(janitor)
}
