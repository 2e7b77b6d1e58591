package repository

import (
	"fmt"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// translate maps a raw database error onto the failure taxonomy. Errors
// that already carry a taxonomy sentinel pass through unchanged, so
// repository code can return its own wrappers from inside a transaction
// without double-wrapping.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if isTaxonomy(err) {
		return err
	}

	switch datastore.Categorize(err) {
	case datastore.CategoryRowNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case datastore.CategoryUniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case datastore.CategoryCheckViolation, datastore.CategoryForeignKeyViolation, datastore.CategoryNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case datastore.CategoryLocked, datastore.CategoryDeadlock:
		return fmt.Errorf("%w: %w", ErrContention, err)
	default:
		return err
	}
}

func isTaxonomy(err error) bool {
	for _, sentinel := range []error{
		ErrNotFound,
		ErrDuplicateKey,
		ErrAlreadyExists,
		ErrPreconditionFailed,
		ErrConstraintViolation,
		ErrContention,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
