package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"famboard/internal/models/db_models"
)

type TaskRepository interface {
	Insert(ctx context.Context, task *db_models.Task) error
	FindByID(ctx context.Context, id string) (*db_models.Task, error)
	ListByFamilyID(ctx context.Context, familyID string) ([]db_models.Task, error)
	Save(ctx context.Context, task *db_models.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{
		db: db,
	}
}

func (t *taskRepository) Insert(ctx context.Context, task *db_models.Task) error {
	return t.db.WithContext(ctx).Create(task).Error
}

func (t *taskRepository) FindByID(ctx context.Context, id string) (*db_models.Task, error) {
	var task db_models.Task
	err := t.db.WithContext(ctx).First(&task, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (t *taskRepository) ListByFamilyID(ctx context.Context, familyID string) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("due_date ASC NULLS LAST").
		Find(&tasks).Error
	return tasks, err
}

func (t *taskRepository) Save(ctx context.Context, task *db_models.Task) error {
	return t.db.WithContext(ctx).Save(task).Error
}
