package dto

import (
	"time"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
	"github.com/rafabene/usermanager-backend/internal/services"
)

// UserResponse representa a resposta de um usuário (sem a senha)
type UserResponse struct {
	ID        uint       `json:"id" example:"1"`
	Username  string     `json:"username" example:"alice"`
	Email     string     `json:"email" example:"a@x.io"`
	Role      string     `json:"role" example:"user"`
	Status    string     `json:"status" example:"active"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// ProfileResponse representa o perfil de um usuário
type ProfileResponse struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"userId"`
	FullName          string    `json:"fullName" example:"Alice"`
	DateOfBirth       *string   `json:"dateOfBirth" example:"1990-05-17"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
	PhoneNumber       *string   `json:"phoneNumber"`
	AddressLine       *string   `json:"addressLine"`
	City              *string   `json:"city"`
	PostalCode        *string   `json:"postalCode"`
	Country           *string   `json:"country"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateUserResponse é a resposta da criação: usuário e perfil
type CreateUserResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

// LoginResponse é a resposta de um login bem-sucedido
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest documenta o corpo de POST /api/users
type CreateUserRequest = services.CreateUserInput

// UpdateUserRequest documenta o corpo de PUT /api/users/{userId}
type UpdateUserRequest = services.UpdateUserInput

// LoginRequest documenta o corpo de POST /api/auth/login
type LoginRequest = services.LoginInput

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email.String(),
		Role:      string(user.Role),
		Status:    string(user.Status),
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		DeletedAt: user.DeletedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToProfileResponse converte uma entidade UserProfile para ProfileResponse
func ToProfileResponse(profile *entities.UserProfile) ProfileResponse {
	var dob *string
	if profile.DateOfBirth != nil {
		formatted := profile.DateOfBirth.Format("2006-01-02")
		dob = &formatted
	}

	return ProfileResponse{
		ID:                profile.ID,
		UserID:            profile.UserID,
		FullName:          profile.FullName,
		DateOfBirth:       dob,
		ProfilePictureURL: profile.ProfilePictureURL,
		PhoneNumber:       profile.PhoneNumber,
		AddressLine:       profile.AddressLine,
		City:              profile.City,
		PostalCode:        profile.PostalCode,
		Country:           profile.Country,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// ToCreateUserResponse converte o agregado criado
func ToCreateUserResponse(created *entities.UserWithProfile) CreateUserResponse {
	return CreateUserResponse{
		User:    ToUserResponse(created.User),
		Profile: ToProfileResponse(created.Profile),
	}
}

// ToLoginResponse converte o resultado do login
func ToLoginResponse(result *services.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     result.Token.Value,
		ExpiresAt: result.Token.ExpiresAt,
		User:      ToUserResponse(result.User),
	}
}
