package repository

import (
	"errors"

	"stock-admin/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translate maps constraint violations onto domain errors. Other errors are
// returned unchanged.
func translate(err error, onForeignKey *model.DomainError) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		return model.ErrDuplicateName
	case pgForeignKeyViolation:
		return onForeignKey
	case pgCheckViolation:
		return model.ErrInvalidQuantity
	default:
		return err
	}
}

// isDomainError reports whether err is one of the model's domain errors.
func isDomainError(err error) bool {
	var domainErr *model.DomainError
	return errors.As(err, &domainErr)
}
