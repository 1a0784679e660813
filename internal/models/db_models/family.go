package db_models

import "github.com/google/uuid"

type Family struct {
	BaseModel
	Name        string
	Description string
	AvatarURL   string
	// CreatorID never changes after creation; ownership transfer is not
	// supported.
	CreatorID uuid.UUID `gorm:"type:uuid;index"`

	Members      []FamilyMember      `gorm:"constraint:OnDelete:CASCADE"`
	Invites      []FamilyInvite      `gorm:"constraint:OnDelete:CASCADE"`
	JoinRequests []FamilyJoinRequest `gorm:"constraint:OnDelete:CASCADE"`
	Tasks        []Task              `gorm:"constraint:OnDelete:CASCADE"`
}
