package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	"github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/domain/ports"
	"github.com/rafabene/usermanager-backend/internal/domain/repositories"
	"github.com/rafabene/usermanager-backend/internal/domain/valueobjects"
)

const dateLayout = "2006-01-02"

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	uow         ports.UnitOfWork
	hasher      ports.PasswordHasher
	validator   ports.Validator
	logger      ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	validator ports.Validator,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uow:         uow,
		hasher:      hasher,
		validator:   validator,
		logger:      logger,
	}
}

// CreateUser cria o usuário e seu perfil em uma única transação.
// Etapas: validação, unicidade, hash da senha, inserções, commit.
// Qualquer falha antes do commit não deixa registros no banco.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.UserWithProfile, error) {
	input.Username = normalizeUsername(input.Username)
	logger := ports.LoggerFromContext(ctx, s.logger).With("username", input.Username)

	if err := s.validator.Validate(&input); err != nil {
		logger.Debug("create user payload rejected", "error", err)
		return nil, err
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, emailViolation()
	}

	profile, err := buildProfile(input.Profile)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUsernameAvailable(ctx, input.Username); err != nil {
		return nil, err
	}
	if err := s.ensureEmailAvailable(ctx, email.String()); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		return nil, errors.NewUnexpected(err)
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: digest,
		Role:         entities.Role(input.Role),
		Status:       entities.Status(input.Status),
	}
	user.ApplyDefaults()

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.Create(txCtx, user); err != nil {
			return persistenceFailure("create user", err)
		}

		profile.UserID = user.ID
		if err := s.profileRepo.Create(txCtx, profile); err != nil {
			return persistenceFailure("create profile", err)
		}
		return nil
	})
	if err != nil {
		logger.Warn("user creation rolled back", "error", err)
		return nil, persistenceFailure("create user", err)
	}

	logger.Info("user created", "user_id", user.ID, "role", user.Role)

	return &entities.UserWithProfile{User: user, Profile: profile}, nil
}

// GetUser busca um usuário por ID. Com includeDeleted, usuários com
// soft delete também são retornados.
func (s *UserService) GetUser(ctx context.Context, id uint, includeDeleted bool) (*entities.User, error) {
	var (
		user *entities.User
		err  error
	)
	if includeDeleted {
		user, err = s.userRepo.FindByIDUnscoped(ctx, id)
	} else {
		user, err = s.userRepo.FindByID(ctx, id)
	}
	if err != nil {
		return nil, errors.NewPersistence("find user", err)
	}
	if user == nil {
		return nil, errors.NewNotFound(errors.ErrUserNotFound)
	}
	return user, nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	users, err := s.userRepo.List(ctx, filters.Normalize())
	if err != nil {
		return nil, errors.NewPersistence("list users", err)
	}
	return users, nil
}

// UpdateUser aplica uma atualização parcial. Requisições que contêm
// username são rejeitadas antes de qualquer outra verificação.
func (s *UserService) UpdateUser(ctx context.Context, id uint, input UpdateUserInput) (*entities.User, error) {
	logger := ports.LoggerFromContext(ctx, s.logger).With("user_id", id)

	if input.HasUsername() {
		return nil, errors.NewConflict(errors.ErrUsernameImmutable)
	}

	if err := s.validator.Validate(&input); err != nil {
		return nil, err
	}

	// corpo sem campos mutáveis não grava nada
	if input.IsEmpty() {
		return s.GetUser(ctx, id, false)
	}

	var email *valueobjects.Email
	if input.Email != nil {
		parsed, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, emailViolation()
		}
		email = &parsed
	}

	var digest string
	if input.Password != nil {
		var err error
		if digest, err = s.hasher.Hash(*input.Password); err != nil {
			logger.Error("failed to hash password", "error", err)
			return nil, errors.NewUnexpected(err)
		}
	}

	var updated *entities.User
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return errors.NewPersistence("find user", err)
		}
		if user == nil {
			return errors.NewNotFound(errors.ErrUserNotFound)
		}

		if email != nil && !email.Equals(user.Email) {
			if err := s.ensureEmailAvailable(txCtx, email.String()); err != nil {
				return err
			}
			user.Email = *email
		}
		if digest != "" {
			user.PasswordHash = digest
		}
		if input.Role != nil {
			user.Role = entities.Role(*input.Role)
		}
		if input.Status != nil {
			user.Status = entities.Status(*input.Status)
		}

		if err := s.userRepo.Update(txCtx, user); err != nil {
			return persistenceFailure("update user", err)
		}
		user.UpdatedAt = time.Now().UTC()
		updated = user
		return nil
	})
	if err != nil {
		return nil, persistenceFailure("update user", err)
	}

	logger.Info("user updated", "password_changed", digest != "")
	return updated, nil
}

// SoftDeleteUser marca usuário e perfil como deletados na mesma transação
func (s *UserService) SoftDeleteUser(ctx context.Context, id uint) error {
	logger := ports.LoggerFromContext(ctx, s.logger).With("user_id", id)

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, id)
		if err != nil {
			return errors.NewPersistence("find user", err)
		}
		if user == nil {
			return errors.NewNotFound(errors.ErrUserNotFound)
		}

		if err := s.profileRepo.SoftDeleteByUserID(txCtx, id); err != nil {
			return errors.NewPersistence("soft delete profile", err)
		}
		if err := s.userRepo.SoftDelete(txCtx, id); err != nil {
			return errors.NewPersistence("soft delete user", err)
		}
		return nil
	})
	if err != nil {
		return persistenceFailure("soft delete user", err)
	}

	logger.Info("user soft deleted")
	return nil
}

// ForceDeleteUser remove usuário e perfil permanentemente, inclusive
// registros que já estavam com soft delete
func (s *UserService) ForceDeleteUser(ctx context.Context, id uint) error {
	logger := ports.LoggerFromContext(ctx, s.logger).With("user_id", id)

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByIDUnscoped(txCtx, id)
		if err != nil {
			return errors.NewPersistence("find user", err)
		}
		if user == nil {
			return errors.NewNotFound(errors.ErrUserNotFound)
		}

		if err := s.profileRepo.HardDeleteByUserID(txCtx, id); err != nil {
			return errors.NewPersistence("delete profile", err)
		}
		if err := s.userRepo.HardDelete(txCtx, id); err != nil {
			return errors.NewPersistence("delete user", err)
		}
		return nil
	})
	if err != nil {
		return persistenceFailure("force delete user", err)
	}

	logger.Info("user permanently deleted")
	return nil
}

// UsernameExists verifica se o username já está em uso (inclusive por usuários deletados)
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	username = normalizeUsername(username)
	if username == "" {
		return false, requiredViolation("username")
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return false, errors.NewPersistence("check username", err)
	}
	return exists, nil
}

// EmailExists verifica se o email já está em uso (inclusive por usuários deletados)
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	email = valueobjects.Normalize(email)
	if email == "" {
		return false, requiredViolation("email")
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, errors.NewPersistence("check email", err)
	}
	return exists, nil
}

func (s *UserService) ensureUsernameAvailable(ctx context.Context, username string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.NewPersistence("check username", err)
	}
	if exists {
		return errors.NewConflict(errors.ErrUsernameAlreadyExists)
	}
	return nil
}

func (s *UserService) ensureEmailAvailable(ctx context.Context, email string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.NewPersistence("check email", err)
	}
	if exists {
		return errors.NewConflict(errors.ErrEmailAlreadyExists)
	}
	return nil
}

func buildProfile(input *CreateProfileInput) (*entities.UserProfile, error) {
	profile := &entities.UserProfile{
		FullName:          strings.TrimSpace(input.FullName),
		ProfilePictureURL: input.ProfilePictureURL,
		PhoneNumber:       input.PhoneNumber,
		AddressLine:       input.AddressLine,
		City:              input.City,
		PostalCode:        input.PostalCode,
		Country:           input.Country,
	}

	if input.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *input.DateOfBirth)
		if err != nil {
			return nil, errors.NewValidation(errors.Violation{
				Field:   "profile.dateOfBirth",
				Type:    errors.ViolationFormat,
				Message: "profile.dateOfBirth must be a date in the format YYYY-MM-DD",
				Tag:     "datetime",
				Param:   dateLayout,
			})
		}
		profile.DateOfBirth = &dob
	}

	return profile, nil
}

// persistenceFailure preserva falhas já tipadas (ex.: conflito traduzido
// do índice único) e envolve o restante como erro de persistência
func persistenceFailure(op string, err error) error {
	if errors.As(err) != nil {
		return err
	}
	return errors.NewPersistence(op, err)
}

func emailViolation() error {
	return errors.NewValidation(errors.Violation{
		Field:   "email",
		Type:    errors.ViolationFormat,
		Message: "email must be a valid email address",
		Tag:     "email",
	})
}

func requiredViolation(field string) error {
	return errors.NewValidation(errors.Violation{
		Field:   field,
		Type:    errors.ViolationRequired,
		Message: field + " is required",
		Tag:     "required",
	})
}

// normalizeUsername é aplicado em toda entrada de username (criação, consulta, login)
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
