package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"famboard/internal/models/db_models"
)

type FamilyMemberRepository interface {
	Find(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error)
	ListByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyMember, error)
	ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyMember, error)
	ListAdmins(ctx context.Context, familyID string) ([]db_models.FamilyMember, error)
	CountByFamilyID(ctx context.Context, familyID string) (int64, error)
	CountAdmins(ctx context.Context, familyID string) (int64, error)
	UpdateRole(ctx context.Context, familyID, userID, role string) error
	Delete(ctx context.Context, familyID, userID string) error
}

type familyMemberRepository struct {
	db *gorm.DB
}

func NewFamilyMemberRepository(db *gorm.DB) FamilyMemberRepository {
	return &familyMemberRepository{
		db: db,
	}
}

func (m *familyMemberRepository) Find(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error) {
	var member db_models.FamilyMember
	err := m.db.WithContext(ctx).
		First(&member, "family_id = ? AND user_id = ?", familyID, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *familyMemberRepository) ListByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyMember, error) {
	var members []db_models.FamilyMember
	err := m.db.WithContext(ctx).
		Preload("User").
		Where("family_id = ?", familyID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (m *familyMemberRepository) ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyMember, error) {
	var members []db_models.FamilyMember
	err := m.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (m *familyMemberRepository) ListAdmins(ctx context.Context, familyID string) ([]db_models.FamilyMember, error) {
	var admins []db_models.FamilyMember
	err := m.db.WithContext(ctx).
		Where("family_id = ? AND role = ?", familyID, db_models.RoleAdmin).
		Find(&admins).Error
	return admins, err
}

func (m *familyMemberRepository) CountByFamilyID(ctx context.Context, familyID string) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&db_models.FamilyMember{}).
		Where("family_id = ?", familyID).
		Count(&count).Error
	return count, err
}

func (m *familyMemberRepository) CountAdmins(ctx context.Context, familyID string) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&db_models.FamilyMember{}).
		Where("family_id = ? AND role = ?", familyID, db_models.RoleAdmin).
		Count(&count).Error
	return count, err
}

func (m *familyMemberRepository) UpdateRole(ctx context.Context, familyID, userID, role string) error {
	return m.db.WithContext(ctx).
		Model(&db_models.FamilyMember{}).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		Update("role", role).Error
}

func (m *familyMemberRepository) Delete(ctx context.Context, familyID, userID string) error {
	return m.db.WithContext(ctx).
		Delete(&db_models.FamilyMember{}, "family_id = ? AND user_id = ?", familyID, userID).Error
}
