package services

import (
	"encoding/json"
)

// CreateProfileInput contém os dados do perfil criado junto com o usuário
type CreateProfileInput struct {
	FullName          string  `json:"fullName" validate:"required,max=255"`
	DateOfBirth       *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProfilePictureURL *string `json:"profilePictureUrl,omitempty" validate:"omitempty,url,max=2048"`
	PhoneNumber       *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	AddressLine       *string `json:"addressLine,omitempty" validate:"omitempty,max=255"`
	City              *string `json:"city,omitempty" validate:"omitempty,max=100"`
	PostalCode        *string `json:"postalCode,omitempty" validate:"omitempty,max=20"`
	Country           *string `json:"country,omitempty" validate:"omitempty,max=100"`
}

// CreateUserInput representa os dados para criar um usuário e seu perfil
type CreateUserInput struct {
	Username string              `json:"username" validate:"required,min=3,max=50"`
	Email    string              `json:"email" validate:"required,email,max=255"`
	Password string              `json:"password" validate:"required,min=8,maxbytes=72"`
	Role     string              `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
	Status   string              `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
	Profile  *CreateProfileInput `json:"profile" validate:"required"`
}

// UpdateUserInput representa uma atualização parcial. Apenas campos
// presentes são alterados; username nunca pode ser enviado.
type UpdateUserInput struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,maxbytes=72"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager user"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`

	usernamePresent bool
}

// UnmarshalJSON registra a presença da chave username mesmo quando o valor é null
func (in *UpdateUserInput) UnmarshalJSON(data []byte) error {
	type plain UpdateUserInput

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*in = UpdateUserInput(decoded)
	_, in.usernamePresent = raw["username"]
	return nil
}

// HasUsername indica se a requisição tentou alterar o username
func (in UpdateUserInput) HasUsername() bool {
	return in.usernamePresent || in.Username != nil
}

// IsEmpty indica que nenhum campo mutável foi enviado
func (in UpdateUserInput) IsEmpty() bool {
	return in.Email == nil && in.Password == nil && in.Role == nil && in.Status == nil
}

// LoginInput contém as credenciais de login
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
