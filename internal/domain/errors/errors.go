package errors

import (
	"errors"
	"fmt"
)

// Motivos das falhas de negócio
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrUsernameAlreadyExists = errors.New("error.username_already_exists")
	ErrEmailAlreadyExists    = errors.New("error.email_already_exists")
	ErrUsernameImmutable     = errors.New("error.username_immutable")
	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrAccountNotActive      = errors.New("error.account_not_active")
)

// Motivos genéricos, um por Kind
var (
	ErrValidation  = errors.New("error.validation")
	ErrPersistence = errors.New("error.persistence")
	ErrInternal    = errors.New("error.internal")
)

// Kind identifica a variante de uma Failure. É o único dado que a
// camada HTTP usa para decidir o status da resposta.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindPersistence  Kind = "persistence"
	KindUnexpected   Kind = "unexpected"
)

// Categorias de violação de schema
const (
	ViolationRequired = "required"
	ViolationFormat   = "format"
	ViolationEnum     = "enum"
	ViolationLength   = "length"
	ViolationJSON     = "json"
	ViolationInvalid  = "invalid"
)

// Violation descreve um campo que não atende ao schema
type Violation struct {
	Field   string // caminho em notação de ponto (ex.: profile.fullName)
	Type    string // categoria (required, format, enum...)
	Message string // mensagem em inglês, usada quando não há tradução
	Tag     string // regra que falhou, usada como chave de tradução
	Param   string
}

// Failure é o erro tipado retornado pelo domínio
type Failure struct {
	Kind       Kind
	Reason     error
	Violations []Violation
	Err        error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Reason)
}

// Unwrap expõe tanto o motivo quanto a causa para errors.Is/As
func (f *Failure) Unwrap() []error {
	errs := make([]error, 0, 2)
	if f.Reason != nil {
		errs = append(errs, f.Reason)
	}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}
	return errs
}

// MessageKey retorna o message ID para tradução
func (f *Failure) MessageKey() string {
	if f.Reason == nil {
		return ErrInternal.Error()
	}
	return f.Reason.Error()
}

// NewValidation cria uma falha de validação com todas as violações encontradas
func NewValidation(violations ...Violation) *Failure {
	return &Failure{Kind: KindValidation, Reason: ErrValidation, Violations: violations}
}

// NewConflict cria uma falha de conflito (unicidade ou campo imutável)
func NewConflict(reason error) *Failure {
	return &Failure{Kind: KindConflict, Reason: reason}
}

// NewNotFound cria uma falha de recurso inexistente
func NewNotFound(reason error) *Failure {
	return &Failure{Kind: KindNotFound, Reason: reason}
}

// NewUnauthorized cria uma falha de credenciais inválidas
func NewUnauthorized(reason error) *Failure {
	return &Failure{Kind: KindUnauthorized, Reason: reason}
}

// NewForbidden cria uma falha de conta sem permissão de acesso
func NewForbidden(reason error) *Failure {
	return &Failure{Kind: KindForbidden, Reason: reason}
}

// NewPersistence envolve um erro inesperado do banco
func NewPersistence(op string, err error) *Failure {
	return &Failure{Kind: KindPersistence, Reason: ErrPersistence, Err: fmt.Errorf("%s: %w", op, err)}
}

// NewUnexpected envolve qualquer erro não categorizado
func NewUnexpected(err error) *Failure {
	return &Failure{Kind: KindUnexpected, Reason: ErrInternal, Err: err}
}

// As extrai a Failure da cadeia de erros, se houver
func As(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// KindOf retorna a variante do erro; erros não tipados são KindUnexpected
func KindOf(err error) Kind {
	if f := As(err); f != nil {
		return f.Kind
	}
	return KindUnexpected
}

// IsKind verifica a variante de um erro
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
