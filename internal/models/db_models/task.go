package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Task struct {
	BaseModel
	FamilyID    uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	AssigneeID  *uuid.UUID     `gorm:"type:uuid;index"`
	DueDate     *time.Time
	Tags        pq.StringArray `gorm:"type:text[]"`
	CreatedByID uuid.UUID      `gorm:"type:uuid"`
	IsDone      bool
}
