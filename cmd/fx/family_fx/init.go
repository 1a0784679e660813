package family_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"famboard/internal/repositories"
	"famboard/internal/services"
)

var Module = fx.Provide(
	provideFamilyService,
	provideFamilyRepo,
	provideMemberRepo)

func provideFamilyRepo(db *gorm.DB) repositories.FamilyRepository {
	return repositories.NewFamilyRepository(db)
}

func provideMemberRepo(db *gorm.DB) repositories.FamilyMemberRepository {
	return repositories.NewFamilyMemberRepository(db)
}

func provideFamilyService(
	familyRepo repositories.FamilyRepository,
	memberRepo repositories.FamilyMemberRepository,
	inviteRepo repositories.InviteRepository,
	joinRequestRepo repositories.JoinRequestRepository,
	notifier services.Notifier,
	logger *zap.Logger) services.FamilyServiceInterface {
	return services.NewFamilyService(familyRepo, memberRepo, inviteRepo, joinRequestRepo, notifier, logger)
}
