package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"famboard/internal/models/db_models"
	"famboard/internal/models/request_models"
	"famboard/pkg/utils"
)

type taskFixture struct {
	store    *memStore
	notifier *recordingNotifier
	families FamilyServiceInterface
	tasks    TaskServiceInterface
}

func newTaskFixture() *taskFixture {
	store := newMemStore()
	notifier := &recordingNotifier{}
	familyRepo := &fakeFamilyRepo{store: store}
	memberRepo := &fakeMemberRepo{store: store}

	return &taskFixture{
		store:    store,
		notifier: notifier,
		families: NewFamilyService(familyRepo, memberRepo,
			&fakeInviteRepo{store: store}, &fakeJoinRequestRepo{store: store}, notifier, zap.NewNop()),
		tasks: NewTaskService(&fakeTaskRepo{store: store}, memberRepo, notifier, zap.NewNop()),
	}
}

func (fx *taskFixture) addMember(t *testing.T, familyID string, user *db_models.User, role string) {
	t.Helper()
	family, err := (&fakeFamilyRepo{store: fx.store}).FindByID(context.Background(), familyID)
	require.NoError(t, err)
	require.NotNil(t, family)

	fx.store.mu.Lock()
	fx.store.members = append(fx.store.members, &db_models.FamilyMember{
		UserID:   user.ID,
		FamilyID: family.ID,
		Role:     role,
		JoinedAt: fx.store.nextSeq(),
	})
	fx.store.mu.Unlock()
}

func TestCreateTaskRequiresMembership(t *testing.T) {
	fx := newTaskFixture()
	creator := fx.store.addUser("Alice", "alice@example.com")
	outsider := fx.store.addUser("Bob", "bob@example.com")

	family, err := fx.families.CreateFamily(context.Background(), creator.ID.String(),
		request_models.CreateFamilyRequest{Name: "Smiths"})
	require.NoError(t, err)

	_, err = fx.tasks.CreateTask(context.Background(), family.ID, outsider.ID.String(),
		request_models.CreateTaskRequest{Title: "Dishes"})
	assert.ErrorIs(t, err, utils.ErrNotFamilyMember)

	task, err := fx.tasks.CreateTask(context.Background(), family.ID, creator.ID.String(),
		request_models.CreateTaskRequest{Title: "Dishes", Tags: []string{"kitchen", "daily"}})
	require.NoError(t, err)
	assert.Equal(t, "Dishes", task.Title)
	assert.Equal(t, []string{"kitchen", "daily"}, task.Tags)
	assert.Contains(t, fx.notifier.names(), "task-schedule-updated")
}

func TestCreateTaskRejectsNonMemberAssignee(t *testing.T) {
	fx := newTaskFixture()
	creator := fx.store.addUser("Alice", "alice@example.com")
	outsider := fx.store.addUser("Bob", "bob@example.com")

	family, err := fx.families.CreateFamily(context.Background(), creator.ID.String(),
		request_models.CreateFamilyRequest{Name: "Smiths"})
	require.NoError(t, err)

	_, err = fx.tasks.CreateTask(context.Background(), family.ID, creator.ID.String(),
		request_models.CreateTaskRequest{Title: "Dishes", AssigneeID: outsider.ID.String()})
	assert.ErrorIs(t, err, utils.ErrAssigneeNotMember)
}

func TestAssignTaskNotifiesBothSides(t *testing.T) {
	fx := newTaskFixture()
	creator := fx.store.addUser("Alice", "alice@example.com")
	first := fx.store.addUser("Bob", "bob@example.com")
	second := fx.store.addUser("Carol", "carol@example.com")

	family, err := fx.families.CreateFamily(context.Background(), creator.ID.String(),
		request_models.CreateFamilyRequest{Name: "Smiths"})
	require.NoError(t, err)
	fx.addMember(t, family.ID, first, db_models.RoleMember)
	fx.addMember(t, family.ID, second, db_models.RoleMember)

	task, err := fx.tasks.CreateTask(context.Background(), family.ID, creator.ID.String(),
		request_models.CreateTaskRequest{Title: "Dishes", AssigneeID: first.ID.String()})
	require.NoError(t, err)

	updated, err := fx.tasks.AssignTask(context.Background(), family.ID, creator.ID.String(), task.ID,
		request_models.AssignTaskRequest{AssigneeID: second.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, second.ID.String(), updated.AssigneeID)

	var unassignedTo, assignedTo []string
	for _, event := range fx.notifier.events {
		switch event.Name {
		case "task-unassigned":
			unassignedTo = append(unassignedTo, event.UserID)
		case "task-assigned":
			assignedTo = append(assignedTo, event.UserID)
		}
	}
	assert.Contains(t, unassignedTo, first.ID.String())
	assert.Contains(t, assignedTo, second.ID.String())
	assert.Contains(t, fx.notifier.names(), "task-schedule-updated")
}

func TestAssignTaskUnassign(t *testing.T) {
	fx := newTaskFixture()
	creator := fx.store.addUser("Alice", "alice@example.com")
	assignee := fx.store.addUser("Bob", "bob@example.com")

	family, err := fx.families.CreateFamily(context.Background(), creator.ID.String(),
		request_models.CreateFamilyRequest{Name: "Smiths"})
	require.NoError(t, err)
	fx.addMember(t, family.ID, assignee, db_models.RoleMember)

	task, err := fx.tasks.CreateTask(context.Background(), family.ID, creator.ID.String(),
		request_models.CreateTaskRequest{Title: "Dishes", AssigneeID: assignee.ID.String()})
	require.NoError(t, err)

	updated, err := fx.tasks.AssignTask(context.Background(), family.ID, creator.ID.String(), task.ID,
		request_models.AssignTaskRequest{})
	require.NoError(t, err)
	assert.Empty(t, updated.AssigneeID)
	assert.Contains(t, fx.notifier.names(), "task-unassigned")
}

func TestAssignTaskUnknownTask(t *testing.T) {
	fx := newTaskFixture()
	creator := fx.store.addUser("Alice", "alice@example.com")

	family, err := fx.families.CreateFamily(context.Background(), creator.ID.String(),
		request_models.CreateFamilyRequest{Name: "Smiths"})
	require.NoError(t, err)

	_, err = fx.tasks.AssignTask(context.Background(), family.ID, creator.ID.String(),
		"11111111-1111-1111-1111-111111111111", request_models.AssignTaskRequest{})
	assert.ErrorIs(t, err, utils.ErrTaskNotFound)
}
