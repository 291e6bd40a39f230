package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/usermanager-backend/internal/domain/errors"
)

const pgUniqueViolation = "23505"

// uniqueViolation reporta se err é uma violação de índice único e,
// quando possível, qual constraint/coluna foi violada.
func uniqueViolation(err error) (bool, string) {
	if err == nil {
		return false, ""
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		if pgxErr.Code == pgUniqueViolation {
			return true, pgxErr.ConstraintName + " " + pgxErr.Detail
		}
		return false, ""
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if string(pqErr.Code) == pgUniqueViolation {
			return true, pqErr.Constraint + " " + pqErr.Detail
		}
		return false, ""
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true, err.Error()
	}

	// SQLite (dev/testes): "UNIQUE constraint failed: users.username"
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value") {
		return true, msg
	}
	return false, ""
}

// translateUserWriteError converte violações de unicidade em falhas de conflito
// do domínio. Demais erros são devolvidos sem alteração.
func translateUserWriteError(err error) error {
	ok, where := uniqueViolation(err)
	if !ok {
		return err
	}
	where = strings.ToLower(where)
	switch {
	case strings.Contains(where, "username"):
		return &domainerrors.Failure{Kind: domainerrors.KindConflict, Reason: domainerrors.ErrUsernameAlreadyExists, Err: err}
	case strings.Contains(where, "email"):
		return &domainerrors.Failure{Kind: domainerrors.KindConflict, Reason: domainerrors.ErrEmailAlreadyExists, Err: err}
	}
	return err
}
