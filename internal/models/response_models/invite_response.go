package response_models

import "time"

type InviteResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	FamilyID      string    `json:"family_id"`
	SenderID      string    `json:"sender_id"`
	ReceiverEmail string    `json:"receiver_email,omitempty"`
	Status        string    `json:"status"`
	ExpiresAt     time.Time `json:"expires_at"`
}

type JoinRequestResponse struct {
	ID          string       `json:"id"`
	FamilyID    string       `json:"family_id"`
	InviteID    string       `json:"invite_id"`
	Status      string       `json:"status"`
	Message     string       `json:"message,omitempty"`
	CreatedAt   int64        `json:"created_at"`
	RespondedAt *time.Time   `json:"responded_at,omitempty"`
	User        UserResponse `json:"user"`
}
