package services

import (
	"context"
	"time"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	"github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/domain/ports"
	"github.com/rafabene/usermanager-backend/internal/domain/repositories"
)

// LoginResult é o resultado de uma autenticação bem-sucedida
type LoginResult struct {
	Token ports.IssuedToken
	User  *entities.User
}

// AuthService autentica usuários por username e senha
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenIssuer
	validator ports.Validator
	logger    ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	validator ports.Validator,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		logger:    logger,
	}
}

// Login verifica as credenciais, registra o último acesso e emite um token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = normalizeUsername(input.Username)
	logger := ports.LoggerFromContext(ctx, s.logger).With("username", input.Username)

	if err := s.validator.Validate(&input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.NewPersistence("find user", err)
	}
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		logger.Warn("login failed")
		return nil, errors.NewUnauthorized(errors.ErrInvalidCredentials)
	}
	if !user.IsActive() {
		logger.Warn("login rejected for inactive account", "status", user.Status)
		return nil, errors.NewForbidden(errors.ErrAccountNotActive)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, errors.NewPersistence("update last login", err)
	}
	now := time.Now().UTC()
	user.LastLogin = &now

	token, err := s.tokens.Issue(user.ID, user.Username, string(user.Role))
	if err != nil {
		logger.Error("failed to issue token", "error", err)
		return nil, errors.NewUnexpected(err)
	}

	logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, User: user}, nil
}
