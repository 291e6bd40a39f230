package ports

import "time"

// PasswordHasher transforma senhas em digests irreversíveis.
// Hash deve usar salt aleatório por chamada.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// IssuedToken é um token de acesso emitido no login
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenIssuer emite tokens de acesso para usuários autenticados
type TokenIssuer interface {
	Issue(userID uint, username, role string) (IssuedToken, error)
}
