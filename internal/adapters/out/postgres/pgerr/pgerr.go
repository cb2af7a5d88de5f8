// Package pgerr turns driver failures into errs.PersistenceError so callers
// can tell storage trouble apart from domain rule violations.
package pgerr

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/lib/pq"
)

// Wrap reports err as a persistence failure of operation. Server errors
// carry their SQLSTATE name. A nil err stays nil.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return errs.NewPersistenceError(operation,
			fmt.Errorf("%s [%s]: %w", pqErr.Code.Name(), pqErr.Code, err))
	}

	return errs.NewPersistenceError(operation, err)
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
