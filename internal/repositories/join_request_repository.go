package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"famboard/internal/models/db_models"
)

type JoinRequestRepository interface {
	Insert(ctx context.Context, request *db_models.FamilyJoinRequest) error
	FindByID(ctx context.Context, id string) (*db_models.FamilyJoinRequest, error)
	FindPending(ctx context.Context, userID, familyID string) (*db_models.FamilyJoinRequest, error)
	ListPendingByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyJoinRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyJoinRequest, error)
	CountPendingByFamilyID(ctx context.Context, familyID string) (int64, error)
	// ApproveTx atomically creates the requester's membership, marks the
	// request APPROVED, and marks the originating invite ACCEPTED if it
	// is still pending.
	ApproveTx(ctx context.Context, request *db_models.FamilyJoinRequest, reviewerID uuid.UUID) error
	Reject(ctx context.Context, request *db_models.FamilyJoinRequest, reviewerID uuid.UUID) error
	Delete(ctx context.Context, id string) error
}

type joinRequestRepository struct {
	db *gorm.DB
}

func NewJoinRequestRepository(db *gorm.DB) JoinRequestRepository {
	return &joinRequestRepository{
		db: db,
	}
}

func (j *joinRequestRepository) Insert(ctx context.Context, request *db_models.FamilyJoinRequest) error {
	return j.db.WithContext(ctx).Create(request).Error
}

func (j *joinRequestRepository) FindByID(ctx context.Context, id string) (*db_models.FamilyJoinRequest, error) {
	var request db_models.FamilyJoinRequest
	err := j.db.WithContext(ctx).
		Preload("User").
		First(&request, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (j *joinRequestRepository) FindPending(ctx context.Context, userID, familyID string) (*db_models.FamilyJoinRequest, error) {
	var request db_models.FamilyJoinRequest
	err := j.db.WithContext(ctx).
		First(&request, "user_id = ? AND family_id = ? AND status = ?",
			userID, familyID, db_models.JoinRequestStatusPending).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func (j *joinRequestRepository) ListPendingByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyJoinRequest, error) {
	var requests []db_models.FamilyJoinRequest
	err := j.db.WithContext(ctx).
		Preload("User").
		Where("family_id = ? AND status = ?", familyID, db_models.JoinRequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (j *joinRequestRepository) ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyJoinRequest, error) {
	var requests []db_models.FamilyJoinRequest
	err := j.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (j *joinRequestRepository) CountPendingByFamilyID(ctx context.Context, familyID string) (int64, error) {
	var count int64
	err := j.db.WithContext(ctx).
		Model(&db_models.FamilyJoinRequest{}).
		Where("family_id = ? AND status = ?", familyID, db_models.JoinRequestStatusPending).
		Count(&count).Error
	return count, err
}

func (j *joinRequestRepository) ApproveTx(ctx context.Context, request *db_models.FamilyJoinRequest, reviewerID uuid.UUID) error {
	return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member := &db_models.FamilyMember{
			UserID:   request.UserID,
			FamilyID: request.FamilyID,
			Role:     db_models.RoleMember,
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		now := time.Now()
		err := tx.Model(request).Updates(map[string]interface{}{
			"status":       db_models.JoinRequestStatusApproved,
			"reviewer_id":  &reviewerID,
			"responded_at": &now,
		}).Error
		if err != nil {
			return err
		}

		// Terminal invite states stay untouched.
		return tx.Model(&db_models.FamilyInvite{}).
			Where("id = ? AND status = ?", request.InviteID, db_models.InviteStatusPending).
			Updates(map[string]interface{}{
				"status":       db_models.InviteStatusAccepted,
				"responded_at": &now,
			}).Error
	})
}

func (j *joinRequestRepository) Reject(ctx context.Context, request *db_models.FamilyJoinRequest, reviewerID uuid.UUID) error {
	now := time.Now()
	return j.db.WithContext(ctx).Model(request).Updates(map[string]interface{}{
		"status":       db_models.JoinRequestStatusRejected,
		"reviewer_id":  &reviewerID,
		"responded_at": &now,
	}).Error
}

func (j *joinRequestRepository) Delete(ctx context.Context, id string) error {
	return j.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.FamilyJoinRequest{}, "id = ?", id).Error
}
