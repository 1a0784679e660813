package realtime_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"famboard/internal/realtime"
	"famboard/internal/repositories"
	"famboard/internal/services"
)

var Module = fx.Provide(
	provideHub, provideNotifier)

func provideHub(logger *zap.Logger) *realtime.Hub {
	return realtime.NewHub(logger)
}

func provideNotifier(hub *realtime.Hub, memberRepo repositories.FamilyMemberRepository, logger *zap.Logger) services.Notifier {
	return realtime.NewNotifier(hub, memberRepo, logger)
}
