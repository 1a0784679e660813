package task_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"famboard/internal/repositories"
	"famboard/internal/services"
)

var Module = fx.Provide(
	provideTaskService, provideTaskRepo)

func provideTaskRepo(db *gorm.DB) repositories.TaskRepository {
	return repositories.NewTaskRepository(db)
}

func provideTaskService(
	taskRepo repositories.TaskRepository,
	memberRepo repositories.FamilyMemberRepository,
	notifier services.Notifier,
	logger *zap.Logger) services.TaskServiceInterface {
	return services.NewTaskService(taskRepo, memberRepo, notifier, logger)
}
