package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"famboard/internal/models/db_models"
	"famboard/internal/models/request_models"
	"famboard/internal/models/response_models"
	"famboard/internal/repositories"
	"famboard/pkg/utils"
)

type InviteServiceInterface interface {
	CreateInvite(ctx context.Context, senderID string, request request_models.CreateInviteRequest) (*response_models.InviteResponse, error)
	RequestToJoinFamily(ctx context.Context, userID string, request request_models.JoinFamilyRequest) (*response_models.JoinRequestResponse, error)
	RespondToJoinRequest(ctx context.Context, adminID, requestID, response string) error
	CancelJoinRequest(ctx context.Context, userID, requestID string) error
	GetPendingJoinRequests(ctx context.Context, familyID, adminID string) ([]response_models.JoinRequestResponse, error)
	GetMyJoinRequests(ctx context.Context, userID string) ([]response_models.JoinRequestResponse, error)
}

type InviteService struct {
	memberRepo      repositories.FamilyMemberRepository
	inviteRepo      repositories.InviteRepository
	joinRequestRepo repositories.JoinRequestRepository
	userRepo        repositories.UserRepository
	notifier        Notifier
	logger          *zap.Logger
}

func NewInviteService(
	memberRepo repositories.FamilyMemberRepository,
	inviteRepo repositories.InviteRepository,
	joinRequestRepo repositories.JoinRequestRepository,
	userRepo repositories.UserRepository,
	notifier Notifier,
	logger *zap.Logger) InviteServiceInterface {
	return &InviteService{
		memberRepo:      memberRepo,
		inviteRepo:      inviteRepo,
		joinRequestRepo: joinRequestRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (i *InviteService) CreateInvite(ctx context.Context, senderID string, request request_models.CreateInviteRequest) (*response_models.InviteResponse, error) {
	sender, err := i.memberRepo.Find(ctx, request.FamilyID, senderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sender == nil || sender.Role != db_models.RoleAdmin {
		return nil, utils.ErrNotFamilyAdmin
	}

	invite := &db_models.FamilyInvite{
		FamilyID:  sender.FamilyID,
		SenderID:  sender.UserID,
		Status:    db_models.InviteStatusPending,
		ExpiresAt: time.Now().AddDate(0, 0, request.ExpiresInDays),
	}

	var receiverEmail string
	if request.ReceiverEmail != "" {
		receiver, err := i.userRepo.FindByEmail(ctx, request.ReceiverEmail)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if receiver != nil {
			existing, err := i.memberRepo.Find(ctx, request.FamilyID, receiver.ID.String())
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if existing != nil {
				return nil, utils.ErrAlreadyFamilyMember
			}
			invite.ReceiverID = &receiver.ID
		}
		receiverEmail = request.ReceiverEmail
	}

	// Loop until unique. At 8 hex chars the pre-check almost never
	// retries; the unique index on code is the real invariant if two
	// requests race through this window.
	for {
		code, err := utils.GenerateInviteCode()
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		exists, err := i.inviteRepo.CodeExists(ctx, code)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !exists {
			invite.Code = code
			break
		}
	}

	if err := i.inviteRepo.Insert(ctx, invite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.InviteResponse{
		ID:            invite.ID.String(),
		Code:          invite.Code,
		FamilyID:      invite.FamilyID.String(),
		SenderID:      invite.SenderID.String(),
		ReceiverEmail: receiverEmail,
		Status:        invite.Status,
		ExpiresAt:     invite.ExpiresAt,
	}, nil
}

func (i *InviteService) RequestToJoinFamily(ctx context.Context, userID string, request request_models.JoinFamilyRequest) (*response_models.JoinRequestResponse, error) {
	invite, err := i.inviteRepo.FindByCode(ctx, request.Code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invite == nil {
		return nil, utils.ErrInviteNotFound
	}

	if invite.Status != db_models.InviteStatusPending {
		if invite.Status == db_models.InviteStatusExpired {
			return nil, utils.ErrInviteExpired
		}
		return nil, utils.ErrInviteAlreadyUsed
	}

	if invite.ExpiresAt.Before(time.Now()) {
		// The expiry flip persists even though this redemption fails.
		if err := i.inviteRepo.MarkExpired(ctx, invite.ID.String()); err != nil {
			i.logger.Warn("failed to mark invite expired",
				zap.String("invite_id", invite.ID.String()),
				zap.Error(err))
		}
		return nil, utils.ErrInviteExpired
	}

	if invite.ReceiverID != nil && invite.ReceiverID.String() != userID {
		return nil, utils.ErrInviteNotForYou
	}

	familyID := invite.FamilyID.String()

	member, err := i.memberRepo.Find(ctx, familyID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member != nil {
		return nil, utils.ErrAlreadyFamilyMember
	}

	pending, err := i.joinRequestRepo.FindPending(ctx, userID, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pending != nil {
		return nil, utils.ErrDuplicateJoinRequest
	}

	requester, err := i.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if requester == nil {
		return nil, utils.ErrAccountNotFound
	}

	joinRequest := &db_models.FamilyJoinRequest{
		UserID:   requester.ID,
		FamilyID: invite.FamilyID,
		InviteID: invite.ID,
		Status:   db_models.JoinRequestStatusPending,
		Message:  request.Message,
	}

	if err := i.joinRequestRepo.Insert(ctx, joinRequest); err != nil {
		return nil, utils.ErrDatabaseError
	}

	i.notifier.JoinRequestCreated(ctx, familyID, joinRequest.ID.String(),
		userID, requester.DisplayName, request.Message)

	return &response_models.JoinRequestResponse{
		ID:        joinRequest.ID.String(),
		FamilyID:  familyID,
		InviteID:  invite.ID.String(),
		Status:    joinRequest.Status,
		Message:   joinRequest.Message,
		CreatedAt: joinRequest.CreatedAt,
		User:      toUserResponse(requester),
	}, nil
}

func (i *InviteService) RespondToJoinRequest(ctx context.Context, adminID, requestID, response string) error {
	joinRequest, err := i.joinRequestRepo.FindByID(ctx, requestID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if joinRequest == nil {
		return utils.ErrJoinRequestNotFound
	}

	familyID := joinRequest.FamilyID.String()

	admin, err := i.memberRepo.Find(ctx, familyID, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if admin == nil || admin.Role != db_models.RoleAdmin {
		return utils.ErrNotFamilyAdmin
	}

	if joinRequest.Status != db_models.JoinRequestStatusPending {
		return utils.ErrJoinRequestNotPending
	}

	requesterID := joinRequest.UserID.String()

	if response == db_models.JoinRequestStatusApproved {
		if err := i.joinRequestRepo.ApproveTx(ctx, joinRequest, admin.UserID); err != nil {
			return utils.ErrDatabaseError
		}
		i.notifier.JoinRequestApproved(ctx, familyID, requestID, requesterID)
		i.notifier.MemberJoined(ctx, familyID, requesterID,
			joinRequest.User.DisplayName, db_models.RoleMember)
		return nil
	}

	if err := i.joinRequestRepo.Reject(ctx, joinRequest, admin.UserID); err != nil {
		return utils.ErrDatabaseError
	}
	i.notifier.JoinRequestRejected(ctx, familyID, requestID, requesterID)
	return nil
}

// CancelJoinRequest deletes the requester's own pending request. The row
// is removed outright, so withdrawn requests leave no audit trail.
func (i *InviteService) CancelJoinRequest(ctx context.Context, userID, requestID string) error {
	joinRequest, err := i.joinRequestRepo.FindByID(ctx, requestID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if joinRequest == nil {
		return utils.ErrJoinRequestNotFound
	}

	if joinRequest.UserID.String() != userID {
		return utils.ErrPermissionDenied
	}
	if joinRequest.Status != db_models.JoinRequestStatusPending {
		return utils.ErrJoinRequestNotPending
	}

	if err := i.joinRequestRepo.Delete(ctx, requestID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (i *InviteService) GetPendingJoinRequests(ctx context.Context, familyID, adminID string) ([]response_models.JoinRequestResponse, error) {
	admin, err := i.memberRepo.Find(ctx, familyID, adminID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if admin == nil || admin.Role != db_models.RoleAdmin {
		return nil, utils.ErrNotFamilyAdmin
	}

	requests, err := i.joinRequestRepo.ListPendingByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toJoinRequestResponses(requests), nil
}

func (i *InviteService) GetMyJoinRequests(ctx context.Context, userID string) ([]response_models.JoinRequestResponse, error) {
	requests, err := i.joinRequestRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toJoinRequestResponses(requests), nil
}

func toJoinRequestResponses(requests []db_models.FamilyJoinRequest) []response_models.JoinRequestResponse {
	responses := make([]response_models.JoinRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, response_models.JoinRequestResponse{
			ID:          request.ID.String(),
			FamilyID:    request.FamilyID.String(),
			InviteID:    request.InviteID.String(),
			Status:      request.Status,
			Message:     request.Message,
			CreatedAt:   request.CreatedAt,
			RespondedAt: request.RespondedAt,
			User:        toUserResponse(&request.User),
		})
	}
	return responses
}
