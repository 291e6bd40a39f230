package entities

import (
	"time"

	"github.com/rafabene/usermanager-backend/internal/domain/valueobjects"
)

// User representa uma conta de usuário do sistema
type User struct {
	ID           uint
	Username     string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	Status       Status
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsActive verifica se a conta pode autenticar
func (u *User) IsActive() bool {
	return u.Status == StatusActive && !u.IsDeleted()
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// ApplyDefaults preenche role e status ausentes com os valores padrão
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = DefaultRole
	}
	if u.Status == "" {
		u.Status = DefaultStatus
	}
}

// UserProfile contém os dados pessoais de um usuário (um-para-um com User)
type UserProfile struct {
	ID                uint
	UserID            uint
	FullName          string
	DateOfBirth       *time.Time
	ProfilePictureURL *string
	PhoneNumber       *string
	AddressLine       *string
	City              *string
	PostalCode        *string
	Country           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// UserWithProfile é o agregado retornado pela criação de usuários
type UserWithProfile struct {
	User    *User
	Profile *UserProfile
}
