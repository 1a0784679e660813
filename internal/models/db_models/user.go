package db_models

type User struct {
	BaseModel
	// Email and PasswordHash are nil for virtual members, who exist only
	// inside a family and cannot log in.
	Email        *string `gorm:"uniqueIndex"`
	PasswordHash *string
	DisplayName  string
	AvatarURL    string
	IsVirtual    bool
}
