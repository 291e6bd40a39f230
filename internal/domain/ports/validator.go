package ports

// Validator verifica um payload contra o schema declarado em suas tags.
// Retorna nil ou uma *errors.Failure de KindValidation com todas as violações.
type Validator interface {
	Validate(payload any) error
}
