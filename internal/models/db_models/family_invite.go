package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InviteStatusPending  = "PENDING"
	InviteStatusAccepted = "ACCEPTED"
	InviteStatusRejected = "REJECTED"
	InviteStatusExpired  = "EXPIRED"
)

type FamilyInvite struct {
	BaseModel
	// 8 uppercase hex characters, unique across all live invites.
	Code     string    `gorm:"size:8;uniqueIndex"`
	FamilyID uuid.UUID `gorm:"type:uuid;index"`
	SenderID uuid.UUID `gorm:"type:uuid"`
	// ReceiverID is set only for invites targeted at an existing user;
	// untargeted invites may be redeemed by anyone holding the code.
	ReceiverID  *uuid.UUID `gorm:"type:uuid"`
	Status      string     `gorm:"size:16;index"`
	ExpiresAt   time.Time
	RespondedAt *time.Time
}
