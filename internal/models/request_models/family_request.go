package request_models

type CreateFamilyRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	AvatarURL   string `json:"avatar_url"`
}

// Pointer fields distinguish "not provided" from "set to empty"; empty
// strings on optional fields clear the stored value.
type UpdateFamilyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url"`
}

type UpdateMemberRoleRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid4"`
	Role     string `json:"role" binding:"required,oneof=ADMIN MEMBER"`
}
