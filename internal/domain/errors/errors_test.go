package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Wrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("create user: %w", NewPersistence("insert", cause))

	assert.Equal(t, KindPersistence, KindOf(err))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error.persistence", As(err).MessageKey())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnexpected, KindOf(errors.New("plain")))
	assert.Equal(t, KindConflict, KindOf(NewConflict(ErrEmailAlreadyExists)))
	assert.Equal(t, KindNotFound, KindOf(NewNotFound(ErrUserNotFound)))
	assert.False(t, IsKind(nil, KindUnexpected))
	assert.Nil(t, As(nil))
}

func TestFailure_Error(t *testing.T) {
	conflict := NewConflict(ErrUsernameAlreadyExists)
	assert.Equal(t, "conflict: error.username_already_exists", conflict.Error())
	assert.ErrorIs(t, conflict, ErrUsernameAlreadyExists)

	validation := NewValidation(
		Violation{Field: "username", Type: ViolationRequired},
		Violation{Field: "email", Type: ViolationRequired},
	)
	assert.Len(t, validation.Violations, 2)
	assert.Equal(t, "error.validation", validation.MessageKey())

	empty := &Failure{Kind: KindUnexpected}
	assert.Equal(t, ErrInternal.Error(), empty.MessageKey())
}
