package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"famboard/internal/models/db_models"
)

type FamilyRepository interface {
	// CreateWithAdmin creates the family and its creator's ADMIN
	// membership in one transaction.
	CreateWithAdmin(ctx context.Context, family *db_models.Family) error
	FindByID(ctx context.Context, id string) (*db_models.Family, error)
	Save(ctx context.Context, family *db_models.Family) error
	Delete(ctx context.Context, id string) error
}

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{
		db: db,
	}
}

func (f *familyRepository) CreateWithAdmin(ctx context.Context, family *db_models.Family) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(family).Error; err != nil {
			return err
		}
		member := &db_models.FamilyMember{
			UserID:   family.CreatorID,
			FamilyID: family.ID,
			Role:     db_models.RoleAdmin,
		}
		return tx.Create(member).Error
	})
}

func (f *familyRepository) FindByID(ctx context.Context, id string) (*db_models.Family, error) {
	familyID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	var family db_models.Family
	err = f.db.WithContext(ctx).First(&family, "id = ?", familyID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &family, nil
}

func (f *familyRepository) Save(ctx context.Context, family *db_models.Family) error {
	return f.db.WithContext(ctx).Save(family).Error
}

func (f *familyRepository) Delete(ctx context.Context, id string) error {
	return f.db.WithContext(ctx).Delete(&db_models.Family{}, "id = ?", id).Error
}
