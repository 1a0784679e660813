package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"famboard/internal/models/db_models"
)

type InviteRepository interface {
	Insert(ctx context.Context, invite *db_models.FamilyInvite) error
	FindByID(ctx context.Context, id string) (*db_models.FamilyInvite, error)
	FindByCode(ctx context.Context, code string) (*db_models.FamilyInvite, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	// MarkExpired flips a PENDING invite to EXPIRED. Used by the lazy
	// expiry path; the status change is persisted even though the
	// redemption that triggered it fails.
	MarkExpired(ctx context.Context, id string) error
	CountPendingByFamilyID(ctx context.Context, familyID string) (int64, error)
}

type inviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{
		db: db,
	}
}

func (i *inviteRepository) Insert(ctx context.Context, invite *db_models.FamilyInvite) error {
	return i.db.WithContext(ctx).Create(invite).Error
}

func (i *inviteRepository) FindByID(ctx context.Context, id string) (*db_models.FamilyInvite, error) {
	var invite db_models.FamilyInvite
	err := i.db.WithContext(ctx).First(&invite, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invite, nil
}

func (i *inviteRepository) FindByCode(ctx context.Context, code string) (*db_models.FamilyInvite, error) {
	var invite db_models.FamilyInvite
	err := i.db.WithContext(ctx).First(&invite, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invite, nil
}

func (i *inviteRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := i.db.WithContext(ctx).
		Model(&db_models.FamilyInvite{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (i *inviteRepository) MarkExpired(ctx context.Context, id string) error {
	now := time.Now()
	return i.db.WithContext(ctx).
		Model(&db_models.FamilyInvite{}).
		Where("id = ? AND status = ?", id, db_models.InviteStatusPending).
		Updates(map[string]interface{}{
			"status":       db_models.InviteStatusExpired,
			"responded_at": &now,
		}).Error
}

func (i *inviteRepository) CountPendingByFamilyID(ctx context.Context, familyID string) (int64, error) {
	var count int64
	err := i.db.WithContext(ctx).
		Model(&db_models.FamilyInvite{}).
		Where("family_id = ? AND status = ?", familyID, db_models.InviteStatusPending).
		Count(&count).Error
	return count, err
}
