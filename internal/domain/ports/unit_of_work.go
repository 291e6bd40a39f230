package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// O contexto retornado por Begin (ou passado para fn em WithTransaction)
// carrega a transação; repositórios que recebem esse contexto operam nela.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
