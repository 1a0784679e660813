package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	JoinRequestStatusPending  = "PENDING"
	JoinRequestStatusApproved = "APPROVED"
	JoinRequestStatusRejected = "REJECTED"
)

type FamilyJoinRequest struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index"`
	FamilyID uuid.UUID `gorm:"type:uuid;index"`
	InviteID uuid.UUID `gorm:"type:uuid"`
	Status   string    `gorm:"size:16;index"`
	Message  string    `gorm:"size:500"`
	// ReviewerID and RespondedAt are set when an admin resolves the
	// request.
	ReviewerID  *uuid.UUID `gorm:"type:uuid"`
	RespondedAt *time.Time

	User User `gorm:"foreignKey:UserID"`
}
