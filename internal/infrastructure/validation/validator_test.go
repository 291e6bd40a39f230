package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/rafabene/usermanager-backend/internal/domain/errors"
)

type profilePayload struct {
	FullName    string  `json:"fullName" validate:"required,max=255"`
	DateOfBirth *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	PictureURL  string  `json:"profilePictureUrl" validate:"omitempty,url"`
}

type userPayload struct {
	Username string          `json:"username" validate:"required,min=3,max=50"`
	Email    string          `json:"email" validate:"required,email"`
	Role     string          `json:"role" validate:"omitempty,oneof=admin manager user"`
	Profile  *profilePayload `json:"profile" validate:"required"`
}

func violationsOf(t *testing.T, err error) map[string]domainerrors.Violation {
	t.Helper()
	require.Error(t, err)
	failure := domainerrors.As(err)
	require.NotNil(t, failure)
	require.Equal(t, domainerrors.KindValidation, failure.Kind)

	byField := make(map[string]domainerrors.Violation, len(failure.Violations))
	for _, v := range failure.Violations {
		byField[v.Field] = v
	}
	return byField
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("payload válido", func(t *testing.T) {
		dob := "1990-05-17"
		err := v.Validate(&userPayload{
			Username: "alice",
			Email:    "a@x.io",
			Role:     "admin",
			Profile:  &profilePayload{FullName: "Alice", DateOfBirth: &dob, PictureURL: "https://cdn.x.io/a.png"},
		})
		assert.NoError(t, err)
	})

	t.Run("reporta todas as violações de uma vez", func(t *testing.T) {
		violations := violationsOf(t, v.Validate(&userPayload{
			Profile: &profilePayload{FullName: "Alice"},
		}))

		require.Len(t, violations, 2)
		assert.Equal(t, domainerrors.ViolationRequired, violations["username"].Type)
		assert.Equal(t, domainerrors.ViolationRequired, violations["email"].Type)
		assert.Equal(t, "email is required", violations["email"].Message)
	})

	t.Run("caminho aninhado usa nomes JSON", func(t *testing.T) {
		dob := "17/05/1990"
		violations := violationsOf(t, v.Validate(&userPayload{
			Username: "alice",
			Email:    "a@x.io",
			Profile:  &profilePayload{DateOfBirth: &dob, PictureURL: "not a url"},
		}))

		assert.Equal(t, domainerrors.ViolationRequired, violations["profile.fullName"].Type)
		assert.Equal(t, domainerrors.ViolationFormat, violations["profile.dateOfBirth"].Type)
		assert.Equal(t, domainerrors.ViolationFormat, violations["profile.profilePictureUrl"].Type)
	})

	t.Run("perfil ausente", func(t *testing.T) {
		violations := violationsOf(t, v.Validate(&userPayload{Username: "alice", Email: "a@x.io"}))
		assert.Equal(t, domainerrors.ViolationRequired, violations["profile"].Type)
	})

	t.Run("categorias de enum e tamanho", func(t *testing.T) {
		violations := violationsOf(t, v.Validate(&userPayload{
			Username: "al",
			Email:    "not-an-email",
			Role:     "root",
			Profile:  &profilePayload{FullName: "Alice"},
		}))

		assert.Equal(t, domainerrors.ViolationLength, violations["username"].Type)
		assert.Equal(t, "3", violations["username"].Param)
		assert.Equal(t, "min", violations["username"].Tag)
		assert.Equal(t, domainerrors.ViolationFormat, violations["email"].Type)
		assert.Equal(t, domainerrors.ViolationEnum, violations["role"].Type)
	})

	t.Run("payload inválido para o validador é erro inesperado", func(t *testing.T) {
		err := v.Validate("not a struct")
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindUnexpected))
	})
}

type secretPayload struct {
	Password    string  `json:"password" validate:"required,min=8,maxbytes=72"`
	NewPassword *string `json:"newPassword" validate:"omitempty,maxbytes=72"`
}

func TestValidator_MaxBytes(t *testing.T) {
	v := New()

	t.Run("conta bytes e não caracteres", func(t *testing.T) {
		assert.NoError(t, v.Validate(&secretPayload{Password: strings.Repeat("é", 36)}))

		violations := violationsOf(t, v.Validate(&secretPayload{Password: strings.Repeat("é", 37)}))
		require.Contains(t, violations, "password")
		assert.Equal(t, domainerrors.ViolationLength, violations["password"].Type)
		assert.Equal(t, "maxbytes", violations["password"].Tag)
		assert.Equal(t, "72", violations["password"].Param)
		assert.Equal(t, "password must be at most 72 bytes long", violations["password"].Message)
	})

	t.Run("campo opcional por ponteiro", func(t *testing.T) {
		long := strings.Repeat("a", 73)
		violations := violationsOf(t, v.Validate(&secretPayload{Password: "s3cretpass", NewPassword: &long}))
		assert.Contains(t, violations, "newPassword")
	})
}
