// Package dberr translates PostgreSQL driver errors into domain errors.
package dberr

import (
	"errors"

	"school/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// ErrEntityIsReferenced is the rule violated when deleting a row other rows depend on.
var ErrEntityIsReferenced = errors.New("entity is referenced by other entities")

// Translate maps unique violations to *errs.ObjectAlreadyExistsError and
// foreign key violations to *errs.BusinessRuleError. Other errors are
// returned unchanged.
func Translate(err error, kind string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause(kind, err)
		}
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return errs.NewObjectAlreadyExistsErrorWithCause(kind, pgErr)
	case foreignKeyViolation:
		return errs.NewBusinessRuleErrorWithCause(ErrEntityIsReferenced, kind, id, pgErr)
	default:
		return err
	}
}

// NotFound maps gorm.ErrRecordNotFound to *errs.ObjectNotFoundError.
func NotFound(err error, kind string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(kind, id)
	}
	return err
}
