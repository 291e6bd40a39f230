package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/usermanager-backend/internal/domain/ports"
)

// DefaultBcryptCost é o custo usado quando nenhum é configurado
const DefaultBcryptCost = 12

// BcryptHasher implementa ports.PasswordHasher com bcrypt.
// Cada chamada a Hash gera um salt novo, então a mesma senha
// produz digests diferentes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher; custos fora do intervalo do bcrypt
// são ajustados para os limites
func NewBcryptHasher(cost int) ports.PasswordHasher {
	return &BcryptHasher{cost: clampCost(cost)}
}

func clampCost(cost int) int {
	switch {
	case cost == 0:
		return DefaultBcryptCost
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	}
	return cost
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
