package invite_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"famboard/internal/repositories"
	"famboard/internal/services"
)

var Module = fx.Provide(
	provideInviteService,
	provideInviteRepo,
	provideJoinRequestRepo)

func provideInviteRepo(db *gorm.DB) repositories.InviteRepository {
	return repositories.NewInviteRepository(db)
}

func provideJoinRequestRepo(db *gorm.DB) repositories.JoinRequestRepository {
	return repositories.NewJoinRequestRepository(db)
}

func provideInviteService(
	memberRepo repositories.FamilyMemberRepository,
	inviteRepo repositories.InviteRepository,
	joinRequestRepo repositories.JoinRequestRepository,
	userRepo repositories.UserRepository,
	notifier services.Notifier,
	logger *zap.Logger) services.InviteServiceInterface {
	return services.NewInviteService(memberRepo, inviteRepo, joinRequestRepo, userRepo, notifier, logger)
}
