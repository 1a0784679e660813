package db_models

import "github.com/google/uuid"

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

type FamilyMember struct {
	BaseModel
	// The (user, family) pair is unique; the index is load-bearing for
	// correctness, not just lookups.
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_family_user"`
	FamilyID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_family_user"`
	Role     string    `gorm:"size:16"`
	JoinedAt int64     `gorm:"autoCreateTime"`

	User User `gorm:"foreignKey:UserID"`
}
