package services

import "context"

// Notifier pushes domain events to connected clients. Delivery is
// best-effort: implementations log failures and never return them, so a
// committed state transition can never be rolled back by a missed push.
type Notifier interface {
	JoinRequestCreated(ctx context.Context, familyID, requestID, userID, displayName, message string)
	JoinRequestApproved(ctx context.Context, familyID, requestID, userID string)
	JoinRequestRejected(ctx context.Context, familyID, requestID, userID string)
	MemberJoined(ctx context.Context, familyID, userID, displayName, role string)
	MemberRoleChanged(ctx context.Context, familyID, userID, role string)
	FamilyUpdated(ctx context.Context, familyID string)
	TaskAssigned(ctx context.Context, familyID, taskID, userID string)
	TaskUnassigned(ctx context.Context, familyID, taskID, userID string)
	TaskScheduleUpdated(ctx context.Context, familyID, taskID string)
}
