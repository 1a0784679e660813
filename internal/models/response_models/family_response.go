package response_models

type FamilyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	CreatorID   string `json:"creator_id"`
	MemberCount int64  `json:"member_count"`
	UserRole    string `json:"user_role"`
	CreatedAt   int64  `json:"created_at"`
}

type FamilyMemberResponse struct {
	MemberID string       `json:"member_id"`
	Role     string       `json:"role"`
	JoinedAt int64        `json:"joined_at"`
	User     UserResponse `json:"user"`
}

type FamilyStatsResponse struct {
	TotalMembers        int64 `json:"total_members"`
	TotalAdmins         int64 `json:"total_admins"`
	PendingInvites      int64 `json:"pending_invites"`
	PendingJoinRequests int64 `json:"pending_join_requests"`
	CreatedAt           int64 `json:"created_at"`
}
