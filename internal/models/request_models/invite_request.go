package request_models

type CreateInviteRequest struct {
	FamilyID      string `json:"family_id" binding:"required,uuid4"`
	ReceiverEmail string `json:"receiver_email" binding:"omitempty,email"`
	ExpiresInDays int    `json:"expires_in_days" binding:"required,min=1,max=30"`
}

type JoinFamilyRequest struct {
	Code    string `json:"code" binding:"required,len=8"`
	Message string `json:"message" binding:"max=500"`
}

type RespondToJoinRequest struct {
	Response string `json:"response" binding:"required,oneof=APPROVED REJECTED"`
}
