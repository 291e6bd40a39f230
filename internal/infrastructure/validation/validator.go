package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/usermanager-backend/internal/domain/errors"
	"github.com/rafabene/usermanager-backend/internal/domain/ports"
)

// Validator implementa ports.Validator com go-playground/validator.
// Os caminhos das violações usam os nomes JSON dos campos.
type Validator struct {
	validate *validator.Validate
}

// New cria um validador configurado para reportar nomes JSON
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	// bcrypt limita a senha em bytes, não em caracteres
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return &Validator{validate: v}
}

var _ ports.Validator = (*Validator)(nil)

// Validate retorna nil ou uma falha de validação com todas as violações
func (v *Validator) Validate(payload any) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.NewUnexpected(fmt.Errorf("validate payload: %w", err))
	}

	violations := make([]domainerrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, toViolation(fe))
	}
	return domainerrors.NewValidation(violations...)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// maxBytes limita o tamanho de uma string em bytes UTF-8: maxbytes=72
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func toViolation(fe validator.FieldError) domainerrors.Violation {
	field := fieldPath(fe.Namespace())
	return domainerrors.Violation{
		Field:   field,
		Type:    category(fe.Tag()),
		Message: message(field, fe),
		Tag:     fe.Tag(),
		Param:   fe.Param(),
	}
}

// fieldPath remove o nome do struct raiz: CreateUserInput.profile.fullName -> profile.fullName
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx != -1 {
		return namespace[idx+1:]
	}
	return namespace
}

func category(tag string) string {
	switch tag {
	case "required", "required_if", "required_with", "required_without":
		return domainerrors.ViolationRequired
	case "email", "url", "uri", "datetime", "numeric", "number":
		return domainerrors.ViolationFormat
	case "oneof":
		return domainerrors.ViolationEnum
	case "min", "max", "len", "maxbytes":
		return domainerrors.ViolationLength
	}
	return domainerrors.ViolationInvalid
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format YYYY-MM-DD", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes long", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}
