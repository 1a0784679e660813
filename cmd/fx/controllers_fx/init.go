package controllers_fx

import (
	"go.uber.org/fx"
	"famboard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewFamilyController),
	fx.Provide(controllers.NewInviteController),
	fx.Provide(controllers.NewTaskController),
	fx.Provide(controllers.NewRealtimeController))
