package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	"github.com/rafabene/usermanager-backend/internal/domain/repositories"
	"github.com/rafabene/usermanager-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateUserWriteError(err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	return r.first(dbFromContext(ctx, r.db).Where("id = ?", id))
}

// FindByIDUnscoped também retorna usuários com soft delete
func (r *UserRepository) FindByIDUnscoped(ctx context.Context, id uint) (*entities.User, error) {
	return r.first(dbFromContext(ctx, r.db).Unscoped().Where("id = ?", id))
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.first(dbFromContext(ctx, r.db).Where("username = ?", username))
}

// ExistsByUsername considera todos os registros, inclusive deletados,
// espelhando o índice único da tabela
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(dbFromContext(ctx, r.db).Unscoped().Where("username = ?", username))
}

// ExistsByEmail considera todos os registros, inclusive deletados
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(dbFromContext(ctx, r.db).Unscoped().Where("email = ?", valueobjects.Normalize(email)))
}

// Update grava apenas os campos mutáveis; username nunca é alterado
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&UserModel{ID: user.ID}).
		Select("email", "password_hash", "role", "status", "last_login", "updated_at").
		Updates(map[string]any{
			"email":         user.Email.String(),
			"password_hash": user.PasswordHash,
			"role":          string(user.Role),
			"status":        string(user.Status),
			"last_login":    user.LastLogin,
			"updated_at":    time.Now().UTC(),
		})
	if result.Error != nil {
		return translateUserWriteError(result.Error)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Model(&UserModel{}).Where("id = ?", id).UpdateColumn("last_login", time.Now().UTC()).Error
}

// SoftDelete preenche deleted_at; registros já deletados não são afetados
func (r *UserRepository) SoftDelete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Delete(&UserModel{}, id).Error
}

// HardDelete remove o registro permanentemente
func (r *UserRepository) HardDelete(ctx context.Context, id uint) error {
	db := dbFromContext(ctx, r.db)
	return db.Unscoped().Delete(&UserModel{}, id).Error
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	filters = filters.Normalize()

	query := dbFromContext(ctx, r.db).Model(&UserModel{})
	if filters.IncludeDeleted {
		query = query.Unscoped()
	}

	// Aplicar filtros
	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}

	query = query.Order("id ASC").Limit(filters.PageSize).Offset(filters.Offset())

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) first(query *gorm.DB) (*entities.User, error) {
	var model UserModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&model)
}

func (r *UserRepository) exists(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Model(&UserModel{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	model := &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		Status:       string(user.Status),
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.DeletedAt != nil {
		model.DeletedAt = gorm.DeletedAt{Time: *user.DeletedAt, Valid: true}
	}
	return model
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if model.DeletedAt.Valid {
		ts := model.DeletedAt.Time
		deletedAt = &ts
	}

	return &entities.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        email,
		PasswordHash: model.PasswordHash,
		Role:         entities.Role(model.Role),
		Status:       entities.Status(model.Status),
		LastLogin:    model.LastLogin,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
		DeletedAt:    deletedAt,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
