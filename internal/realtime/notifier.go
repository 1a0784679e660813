package realtime

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"famboard/internal/repositories"
)

const (
	EventJoinRequestCreated  = "join-request-created"
	EventJoinRequestApproved = "join-request-approved"
	EventJoinRequestRejected = "join-request-rejected"
	EventMemberJoined        = "member-joined"
	EventMemberRoleChanged   = "member-role-changed"
	EventFamilyUpdated       = "family-updated"
	EventTaskAssigned        = "task-assigned"
	EventTaskUnassigned      = "task-unassigned"
	EventTaskScheduleUpdated = "task-schedule-updated"
)

// Notifier translates domain outcomes into hub pushes. Every method is
// fire-and-forget: lookup or delivery problems are logged and swallowed,
// because a missed push must never fail the committed state change that
// triggered it.
type Notifier struct {
	hub        *Hub
	memberRepo repositories.FamilyMemberRepository
	logger     *zap.Logger
}

func NewNotifier(hub *Hub, memberRepo repositories.FamilyMemberRepository, logger *zap.Logger) *Notifier {
	return &Notifier{
		hub:        hub,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (n *Notifier) encode(eventType, familyID string, fields map[string]interface{}) []byte {
	payload := map[string]interface{}{
		"type":      eventType,
		"family_id": familyID,
	}
	for k, v := range fields {
		payload[k] = v
	}

	message, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error("failed to encode event",
			zap.String("event", eventType), zap.Error(err))
		return nil
	}
	return message
}

// sendToFamilyAdmins resolves the family's admins at call time and
// delivers to each one individually. Admins connecting after the lookup
// miss the event.
func (n *Notifier) sendToFamilyAdmins(ctx context.Context, familyID string, message []byte) {
	if message == nil {
		return
	}

	admins, err := n.memberRepo.ListAdmins(ctx, familyID)
	if err != nil {
		n.logger.Warn("failed to resolve family admins",
			zap.String("family_id", familyID), zap.Error(err))
		return
	}

	for _, admin := range admins {
		n.hub.SendToUser(admin.UserID.String(), message)
	}
}

func (n *Notifier) JoinRequestCreated(ctx context.Context, familyID, requestID, userID, displayName, message string) {
	event := n.encode(EventJoinRequestCreated, familyID, map[string]interface{}{
		"request_id":   requestID,
		"user_id":      userID,
		"display_name": displayName,
		"message":      message,
	})
	n.sendToFamilyAdmins(ctx, familyID, event)
}

func (n *Notifier) JoinRequestApproved(ctx context.Context, familyID, requestID, userID string) {
	event := n.encode(EventJoinRequestApproved, familyID, map[string]interface{}{
		"request_id": requestID,
	})
	if event != nil {
		n.hub.SendToUser(userID, event)
	}
}

func (n *Notifier) JoinRequestRejected(ctx context.Context, familyID, requestID, userID string) {
	event := n.encode(EventJoinRequestRejected, familyID, map[string]interface{}{
		"request_id": requestID,
	})
	if event != nil {
		n.hub.SendToUser(userID, event)
	}
}

func (n *Notifier) MemberJoined(ctx context.Context, familyID, userID, displayName, role string) {
	event := n.encode(EventMemberJoined, familyID, map[string]interface{}{
		"user_id":      userID,
		"display_name": displayName,
		"role":         role,
	})
	if event != nil {
		n.hub.SendToFamily(familyID, event)
	}
}

func (n *Notifier) MemberRoleChanged(ctx context.Context, familyID, userID, role string) {
	event := n.encode(EventMemberRoleChanged, familyID, map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	if event != nil {
		n.hub.SendToFamily(familyID, event)
	}
}

func (n *Notifier) FamilyUpdated(ctx context.Context, familyID string) {
	event := n.encode(EventFamilyUpdated, familyID, nil)
	if event != nil {
		n.hub.SendToFamily(familyID, event)
	}
}

func (n *Notifier) TaskAssigned(ctx context.Context, familyID, taskID, userID string) {
	event := n.encode(EventTaskAssigned, familyID, map[string]interface{}{
		"task_id": taskID,
	})
	if event != nil {
		n.hub.SendToUser(userID, event)
	}
}

func (n *Notifier) TaskUnassigned(ctx context.Context, familyID, taskID, userID string) {
	event := n.encode(EventTaskUnassigned, familyID, map[string]interface{}{
		"task_id": taskID,
	})
	if event != nil {
		n.hub.SendToUser(userID, event)
	}
}

func (n *Notifier) TaskScheduleUpdated(ctx context.Context, familyID, taskID string) {
	event := n.encode(EventTaskScheduleUpdated, familyID, map[string]interface{}{
		"task_id": taskID,
	})
	if event != nil {
		n.hub.SendToFamily(familyID, event)
	}
}
