package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"famboard/internal/models/db_models"
)

// stubMemberRepo serves only the admin lookup the notifier needs.
type stubMemberRepo struct {
	admins []db_models.FamilyMember
	err    error
}

func (s *stubMemberRepo) Find(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error) {
	return nil, nil
}

func (s *stubMemberRepo) ListByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyMember, error) {
	return nil, nil
}

func (s *stubMemberRepo) ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyMember, error) {
	return nil, nil
}

func (s *stubMemberRepo) ListAdmins(ctx context.Context, familyID string) ([]db_models.FamilyMember, error) {
	return s.admins, s.err
}

func (s *stubMemberRepo) CountByFamilyID(ctx context.Context, familyID string) (int64, error) {
	return 0, nil
}

func (s *stubMemberRepo) CountAdmins(ctx context.Context, familyID string) (int64, error) {
	return 0, nil
}

func (s *stubMemberRepo) UpdateRole(ctx context.Context, familyID, userID, role string) error {
	return nil
}

func (s *stubMemberRepo) Delete(ctx context.Context, familyID, userID string) error {
	return nil
}

func adminRow(userID uuid.UUID) db_models.FamilyMember {
	return db_models.FamilyMember{UserID: userID, Role: db_models.RoleAdmin}
}

func TestJoinRequestCreatedGoesToAdminsOnly(t *testing.T) {
	hub := NewHub(zap.NewNop())
	adminID := uuid.New()
	memberID := uuid.New()

	admin := newTestClient(hub, adminID.String())
	member := newTestClient(hub, memberID.String())
	hub.Register(admin, []string{"f1"})
	hub.Register(member, []string{"f1"})

	notifier := NewNotifier(hub, &stubMemberRepo{admins: []db_models.FamilyMember{adminRow(adminID)}}, zap.NewNop())
	notifier.JoinRequestCreated(context.Background(), "f1", "r1", "u9", "Bob", "let me in")

	messages := drain(admin)
	require.Len(t, messages, 1)
	assert.Empty(t, drain(member))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(messages[0], &payload))
	assert.Equal(t, EventJoinRequestCreated, payload["type"])
	assert.Equal(t, "f1", payload["family_id"])
	assert.Equal(t, "r1", payload["request_id"])
	assert.Equal(t, "Bob", payload["display_name"])
}

func TestAdminLookupFailureSendsNothing(t *testing.T) {
	hub := NewHub(zap.NewNop())
	adminID := uuid.New()
	admin := newTestClient(hub, adminID.String())
	hub.Register(admin, []string{"f1"})

	notifier := NewNotifier(hub, &stubMemberRepo{err: errors.New("connection refused")}, zap.NewNop())

	// Must not panic or propagate; the triggering operation already
	// committed.
	notifier.JoinRequestCreated(context.Background(), "f1", "r1", "u9", "Bob", "")
	assert.Empty(t, drain(admin))
}

func TestMemberJoinedBroadcastsToFamilyChannel(t *testing.T) {
	hub := NewHub(zap.NewNop())
	inFamily := newTestClient(hub, "u1")
	outside := newTestClient(hub, "u2")
	hub.Register(inFamily, []string{"f1"})
	hub.Register(outside, []string{"f2"})

	notifier := NewNotifier(hub, &stubMemberRepo{}, zap.NewNop())
	notifier.MemberJoined(context.Background(), "f1", "u9", "Bob", db_models.RoleMember)

	messages := drain(inFamily)
	require.Len(t, messages, 1)
	assert.Empty(t, drain(outside))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(messages[0], &payload))
	assert.Equal(t, EventMemberJoined, payload["type"])
	assert.Equal(t, db_models.RoleMember, payload["role"])
}

func TestApprovalFlowReachesRequesterThenChannel(t *testing.T) {
	hub := NewHub(zap.NewNop())
	requester := newTestClient(hub, "u9")
	hub.Register(requester, nil)

	notifier := NewNotifier(hub, &stubMemberRepo{}, zap.NewNop())
	notifier.JoinRequestApproved(context.Background(), "f1", "r1", "u9")

	messages := drain(requester)
	require.Len(t, messages, 1)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(messages[0], &payload))
	assert.Equal(t, EventJoinRequestApproved, payload["type"])

	// Once the client joins the family channel it hears broadcasts.
	hub.JoinFamily(requester, "f1")
	notifier.FamilyUpdated(context.Background(), "f1")
	messages = drain(requester)
	require.Len(t, messages, 1)
	require.NoError(t, json.Unmarshal(messages[0], &payload))
	assert.Equal(t, EventFamilyUpdated, payload["type"])
}

func TestTaskEventsTargetAssignees(t *testing.T) {
	hub := NewHub(zap.NewNop())
	previous := newTestClient(hub, "u1")
	next := newTestClient(hub, "u2")
	hub.Register(previous, []string{"f1"})
	hub.Register(next, []string{"f1"})

	notifier := NewNotifier(hub, &stubMemberRepo{}, zap.NewNop())
	notifier.TaskUnassigned(context.Background(), "f1", "t1", "u1")
	notifier.TaskAssigned(context.Background(), "f1", "t1", "u2")
	notifier.TaskScheduleUpdated(context.Background(), "f1", "t1")

	previousMessages := drain(previous)
	nextMessages := drain(next)

	// Each side gets its direct event plus the family-wide refresh.
	require.Len(t, previousMessages, 2)
	require.Len(t, nextMessages, 2)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(previousMessages[0], &payload))
	assert.Equal(t, EventTaskUnassigned, payload["type"])
	require.NoError(t, json.Unmarshal(nextMessages[0], &payload))
	assert.Equal(t, EventTaskAssigned, payload["type"])
}
