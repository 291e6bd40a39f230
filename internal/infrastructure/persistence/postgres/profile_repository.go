package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	"github.com/rafabene/usermanager-backend/internal/domain/repositories"
)

// ProfileRepository implementa repositories.ProfileRepository
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository cria um novo ProfileRepository
func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entities.UserProfile) error {
	model := toProfileModel(profile)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("User").Create(model).Error; err != nil {
		return err
	}

	profile.ID = model.ID
	profile.CreatedAt = model.CreatedAt
	profile.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint) (*entities.UserProfile, error) {
	var model ProfileModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toProfileEntity(&model), nil
}

func (r *ProfileRepository) SoftDeleteByUserID(ctx context.Context, userID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("user_id = ?", userID).Delete(&ProfileModel{}).Error
}

func (r *ProfileRepository) HardDeleteByUserID(ctx context.Context, userID uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Unscoped().Where("user_id = ?", userID).Delete(&ProfileModel{}).Error
}

func toProfileModel(p *entities.UserProfile) *ProfileModel {
	return &ProfileModel{
		ID:                p.ID,
		UserID:            p.UserID,
		FullName:          p.FullName,
		DateOfBirth:       p.DateOfBirth,
		ProfilePictureURL: p.ProfilePictureURL,
		PhoneNumber:       p.PhoneNumber,
		AddressLine:       p.AddressLine,
		City:              p.City,
		PostalCode:        p.PostalCode,
		Country:           p.Country,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProfileEntity(m *ProfileModel) *entities.UserProfile {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		ts := m.DeletedAt.Time
		deletedAt = &ts
	}

	return &entities.UserProfile{
		ID:                m.ID,
		UserID:            m.UserID,
		FullName:          m.FullName,
		DateOfBirth:       m.DateOfBirth,
		ProfilePictureURL: m.ProfilePictureURL,
		PhoneNumber:       m.PhoneNumber,
		AddressLine:       m.AddressLine,
		City:              m.City,
		PostalCode:        m.PostalCode,
		Country:           m.Country,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
		DeletedAt:         deletedAt,
	}
}
