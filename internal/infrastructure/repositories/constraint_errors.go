package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainerrors "blockpharma.backend/internal/domain/errors"
)

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	// sqlite does not translate CHECK failures
	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}

// translateError maps GORM errors onto domain sentinels. The original error
// stays in the chain for logging.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case isUniqueConstraintViolation(err):
		return fmt.Errorf("%w: %w", domainerrors.ErrAlreadyExists, err)
	case isForeignKeyConstraintViolation(err), isCheckConstraintViolation(err):
		return fmt.Errorf("%w: %w", domainerrors.ErrConstraintViolation, err)
	}
	return err
}
