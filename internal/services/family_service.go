package services

import (
	"context"

	"go.uber.org/zap"
	"famboard/internal/models/db_models"
	"famboard/internal/models/request_models"
	"famboard/internal/models/response_models"
	"famboard/internal/repositories"
	"famboard/pkg/utils"
)

type FamilyServiceInterface interface {
	CreateFamily(ctx context.Context, creatorID string, request request_models.CreateFamilyRequest) (*response_models.FamilyResponse, error)
	GetUserFamilies(ctx context.Context, userID string) ([]response_models.FamilyResponse, error)
	GetFamilyByID(ctx context.Context, familyID, userID string) (*response_models.FamilyResponse, error)
	UpdateFamily(ctx context.Context, familyID, userID string, request request_models.UpdateFamilyRequest) (*response_models.FamilyResponse, error)
	DeleteFamily(ctx context.Context, familyID, userID string) error
	GetFamilyMembers(ctx context.Context, familyID, userID string) ([]response_models.FamilyMemberResponse, error)
	UpdateMemberRole(ctx context.Context, familyID, adminID string, request request_models.UpdateMemberRoleRequest) error
	RemoveMember(ctx context.Context, familyID, adminID, memberID string) error
	LeaveFamily(ctx context.Context, familyID, userID string) error
	GetFamilyStats(ctx context.Context, familyID, userID string) (*response_models.FamilyStatsResponse, error)
}

type FamilyService struct {
	familyRepo      repositories.FamilyRepository
	memberRepo      repositories.FamilyMemberRepository
	inviteRepo      repositories.InviteRepository
	joinRequestRepo repositories.JoinRequestRepository
	notifier        Notifier
	logger          *zap.Logger
}

func NewFamilyService(
	familyRepo repositories.FamilyRepository,
	memberRepo repositories.FamilyMemberRepository,
	inviteRepo repositories.InviteRepository,
	joinRequestRepo repositories.JoinRequestRepository,
	notifier Notifier,
	logger *zap.Logger) FamilyServiceInterface {
	return &FamilyService{
		familyRepo:      familyRepo,
		memberRepo:      memberRepo,
		inviteRepo:      inviteRepo,
		joinRequestRepo: joinRequestRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// requireMembership is the sole read gate: a missing membership row is
// indistinguishable from a missing family.
func (f *FamilyService) requireMembership(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error) {
	member, err := f.memberRepo.Find(ctx, familyID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrNotFamilyMember
	}
	return member, nil
}

func (f *FamilyService) requireAdmin(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error) {
	member, err := f.memberRepo.Find(ctx, familyID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil || member.Role != db_models.RoleAdmin {
		return nil, utils.ErrNotFamilyAdmin
	}
	return member, nil
}

func (f *FamilyService) CreateFamily(ctx context.Context, creatorID string, request request_models.CreateFamilyRequest) (*response_models.FamilyResponse, error) {
	creator, err := parseID(creatorID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	family := &db_models.Family{
		Name:        request.Name,
		Description: request.Description,
		AvatarURL:   request.AvatarURL,
		CreatorID:   creator,
	}

	if err := f.familyRepo.CreateWithAdmin(ctx, family); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FamilyResponse{
		ID:          family.ID.String(),
		Name:        family.Name,
		Description: family.Description,
		AvatarURL:   family.AvatarURL,
		CreatorID:   family.CreatorID.String(),
		MemberCount: 1,
		UserRole:    db_models.RoleAdmin,
		CreatedAt:   family.CreatedAt,
	}, nil
}

func (f *FamilyService) GetUserFamilies(ctx context.Context, userID string) ([]response_models.FamilyResponse, error) {
	memberships, err := f.memberRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	families := make([]response_models.FamilyResponse, 0, len(memberships))
	for _, membership := range memberships {
		family, err := f.familyRepo.FindByID(ctx, membership.FamilyID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if family == nil {
			continue
		}

		count, err := f.memberRepo.CountByFamilyID(ctx, family.ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		families = append(families, response_models.FamilyResponse{
			ID:          family.ID.String(),
			Name:        family.Name,
			Description: family.Description,
			AvatarURL:   family.AvatarURL,
			CreatorID:   family.CreatorID.String(),
			MemberCount: count,
			UserRole:    membership.Role,
			CreatedAt:   family.CreatedAt,
		})
	}

	return families, nil
}

func (f *FamilyService) GetFamilyByID(ctx context.Context, familyID, userID string) (*response_models.FamilyResponse, error) {
	membership, err := f.requireMembership(ctx, familyID, userID)
	if err != nil {
		return nil, err
	}

	family, err := f.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}

	count, err := f.memberRepo.CountByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FamilyResponse{
		ID:          family.ID.String(),
		Name:        family.Name,
		Description: family.Description,
		AvatarURL:   family.AvatarURL,
		CreatorID:   family.CreatorID.String(),
		MemberCount: count,
		UserRole:    membership.Role,
		CreatedAt:   family.CreatedAt,
	}, nil
}

func (f *FamilyService) UpdateFamily(ctx context.Context, familyID, userID string, request request_models.UpdateFamilyRequest) (*response_models.FamilyResponse, error) {
	if _, err := f.requireAdmin(ctx, familyID, userID); err != nil {
		return nil, err
	}

	family, err := f.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}

	if request.Name != nil {
		family.Name = *request.Name
	}
	// Empty optional fields clear the stored value rather than keeping
	// an empty string distinct from absent.
	if request.Description != nil {
		family.Description = *request.Description
	}
	if request.AvatarURL != nil {
		family.AvatarURL = *request.AvatarURL
	}

	if err := f.familyRepo.Save(ctx, family); err != nil {
		return nil, utils.ErrDatabaseError
	}

	f.notifier.FamilyUpdated(ctx, familyID)

	return f.GetFamilyByID(ctx, familyID, userID)
}

func (f *FamilyService) DeleteFamily(ctx context.Context, familyID, userID string) error {
	family, err := f.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if family == nil {
		return utils.ErrFamilyNotFound
	}

	if family.CreatorID.String() != userID {
		return utils.ErrPermissionDenied
	}

	if err := f.familyRepo.Delete(ctx, familyID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FamilyService) GetFamilyMembers(ctx context.Context, familyID, userID string) ([]response_models.FamilyMemberResponse, error) {
	if _, err := f.requireMembership(ctx, familyID, userID); err != nil {
		return nil, err
	}

	members, err := f.memberRepo.ListByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.FamilyMemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, response_models.FamilyMemberResponse{
			MemberID: member.UserID.String(),
			Role:     member.Role,
			JoinedAt: member.JoinedAt,
			User:     toUserResponse(&member.User),
		})
	}

	return responses, nil
}

func (f *FamilyService) UpdateMemberRole(ctx context.Context, familyID, adminID string, request request_models.UpdateMemberRoleRequest) error {
	if _, err := f.requireAdmin(ctx, familyID, adminID); err != nil {
		return err
	}

	target, err := f.memberRepo.Find(ctx, familyID, request.MemberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if target == nil {
		return utils.ErrMemberNotFound
	}

	// The creator can be demoted here; only remove/leave protect the
	// creator's row. Asymmetry carried over from the original behavior.
	if err := f.memberRepo.UpdateRole(ctx, familyID, request.MemberID, request.Role); err != nil {
		return utils.ErrDatabaseError
	}

	f.notifier.MemberRoleChanged(ctx, familyID, request.MemberID, request.Role)

	return nil
}

func (f *FamilyService) RemoveMember(ctx context.Context, familyID, adminID, memberID string) error {
	if _, err := f.requireAdmin(ctx, familyID, adminID); err != nil {
		return err
	}

	family, err := f.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if family == nil {
		return utils.ErrFamilyNotFound
	}

	if family.CreatorID.String() == memberID {
		return utils.ErrCannotRemoveCreator
	}

	target, err := f.memberRepo.Find(ctx, familyID, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if target == nil {
		return utils.ErrMemberNotFound
	}

	if err := f.memberRepo.Delete(ctx, familyID, memberID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FamilyService) LeaveFamily(ctx context.Context, familyID, userID string) error {
	if _, err := f.requireMembership(ctx, familyID, userID); err != nil {
		return err
	}

	family, err := f.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if family == nil {
		return utils.ErrFamilyNotFound
	}

	if family.CreatorID.String() == userID {
		return utils.ErrCannotLeaveAsCreator
	}

	if err := f.memberRepo.Delete(ctx, familyID, userID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FamilyService) GetFamilyStats(ctx context.Context, familyID, userID string) (*response_models.FamilyStatsResponse, error) {
	if _, err := f.requireAdmin(ctx, familyID, userID); err != nil {
		return nil, err
	}

	family, err := f.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}

	// Independent counts; a dashboard read, not a transactional snapshot.
	totalMembers, err := f.memberRepo.CountByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalAdmins, err := f.memberRepo.CountAdmins(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pendingInvites, err := f.inviteRepo.CountPendingByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pendingRequests, err := f.joinRequestRepo.CountPendingByFamilyID(ctx, familyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.FamilyStatsResponse{
		TotalMembers:        totalMembers,
		TotalAdmins:         totalAdmins,
		PendingInvites:      pendingInvites,
		PendingJoinRequests: pendingRequests,
		CreatedAt:           family.CreatedAt,
	}, nil
}
