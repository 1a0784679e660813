package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"famboard/internal/models/db_models"
	"famboard/internal/models/request_models"
	"famboard/internal/models/response_models"
	"famboard/internal/repositories"
	"famboard/pkg/utils"
)

type TaskServiceInterface interface {
	CreateTask(ctx context.Context, familyID, userID string, request request_models.CreateTaskRequest) (*response_models.TaskResponse, error)
	ListFamilyTasks(ctx context.Context, familyID, userID string) ([]response_models.TaskResponse, error)
	AssignTask(ctx context.Context, familyID, userID, taskID string, request request_models.AssignTaskRequest) (*response_models.TaskResponse, error)
}

type TaskService struct {
	taskRepo   repositories.TaskRepository
	memberRepo repositories.FamilyMemberRepository
	notifier   Notifier
	logger     *zap.Logger
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	memberRepo repositories.FamilyMemberRepository,
	notifier Notifier,
	logger *zap.Logger) TaskServiceInterface {
	return &TaskService{
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (t *TaskService) requireMembership(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error) {
	member, err := t.memberRepo.Find(ctx, familyID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrNotFamilyMember
	}
	return member, nil
}

func (t *TaskService) resolveAssignee(ctx context.Context, familyID, assigneeID string) (*uuid.UUID, error) {
	if assigneeID == "" {
		return nil, nil
	}
	member, err := t.memberRepo.Find(ctx, familyID, assigneeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrAssigneeNotMember
	}
	id := member.UserID
	return &id, nil
}

func (t *TaskService) CreateTask(ctx context.Context, familyID, userID string, request request_models.CreateTaskRequest) (*response_models.TaskResponse, error) {
	member, err := t.requireMembership(ctx, familyID, userID)
	if err != nil {
		return nil, err
	}

	assignee, err := t.resolveAssignee(ctx, familyID, request.AssigneeID)
	if err != nil {
		return nil, err
	}

	task := &db_models.Task{
		FamilyID:    member.FamilyID,
		Title:       request.Title,
		Description: request.Description,
		AssigneeID:  assignee,
		DueDate:     request.DueDate,
		Tags:        request.Tags,
		CreatedByID: member.UserID,
	}

	if err := t.taskRepo.Insert(ctx, task); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if assignee != nil {
		t.notifier.TaskAssigned(ctx, familyID, task.ID.String(), assignee.String())
	}
	t.notifier.TaskScheduleUpdated(ctx, familyID, task.ID.String())

	resp := toTaskResponse(task)
	return &resp, nil
}

func (t *TaskService) ListFamilyTasks(ctx context.Context, familyID, userID string) ([]response_models.TaskResponse, error) {
	if _, err := t.requireMembership(ctx, familyID, userID); err != nil {
		return nil, err
	}

	tasks, err := t.taskRepo.ListByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(&task))
	}
	return responses, nil
}

func (t *TaskService) AssignTask(ctx context.Context, familyID, userID, taskID string, request request_models.AssignTaskRequest) (*response_models.TaskResponse, error) {
	if _, err := t.requireMembership(ctx, familyID, userID); err != nil {
		return nil, err
	}

	task, err := t.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if task == nil || task.FamilyID.String() != familyID {
		return nil, utils.ErrTaskNotFound
	}

	newAssignee, err := t.resolveAssignee(ctx, familyID, request.AssigneeID)
	if err != nil {
		return nil, err
	}

	previous := task.AssigneeID
	task.AssigneeID = newAssignee

	if err := t.taskRepo.Save(ctx, task); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Both sides of a reassignment hear about it individually, and the
	// whole family gets a schedule refresh.
	if previous != nil {
		t.notifier.TaskUnassigned(ctx, familyID, taskID, previous.String())
	}
	if newAssignee != nil {
		t.notifier.TaskAssigned(ctx, familyID, taskID, newAssignee.String())
	}
	t.notifier.TaskScheduleUpdated(ctx, familyID, taskID)

	resp := toTaskResponse(task)
	return &resp, nil
}

func toTaskResponse(task *db_models.Task) response_models.TaskResponse {
	assigneeID := ""
	if task.AssigneeID != nil {
		assigneeID = task.AssigneeID.String()
	}
	return response_models.TaskResponse{
		ID:          task.ID.String(),
		FamilyID:    task.FamilyID.String(),
		Title:       task.Title,
		Description: task.Description,
		AssigneeID:  assigneeID,
		DueDate:     task.DueDate,
		Tags:        task.Tags,
		IsDone:      task.IsDone,
		CreatedAt:   task.CreatedAt,
	}
}
