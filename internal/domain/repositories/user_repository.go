package repositories

import (
	"context"
	"math"

	"github.com/rafabene/usermanager-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Find*/List ignoram registros com soft delete, exceto quando indicado;
// Exists* consideram todos os registros, inclusive os deletados.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByIDUnscoped(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateLastLogin(ctx context.Context, id uint) error
	SoftDelete(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// ProfileRepository define a persistência de perfis. Perfis só são criados
// junto com o usuário, dentro da transação do fluxo de criação.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entities.UserProfile) error
	FindByUserID(ctx context.Context, userID uint) (*entities.UserProfile, error)
	SoftDeleteByUserID(ctx context.Context, userID uint) error
	HardDeleteByUserID(ctx context.Context, userID uint) error
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role           *entities.Role
	Status         *entities.Status
	IncludeDeleted bool
	Page           int // Página (começa em 1)
	PageSize       int // Itens por página (default: 20, max: 100)
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage mantém o offset dentro de um int32
	MaxPage = math.MaxInt32 / MaxPageSize
)

// Normalize aplica os limites de paginação
func (f UserFilters) Normalize() UserFilters {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	return f
}

// Offset retorna o deslocamento da página atual
func (f UserFilters) Offset() int {
	n := f.Normalize()
	return (n.Page - 1) * n.PageSize
}
