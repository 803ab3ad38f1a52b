package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKeyError detects unique violations whether or not the dialector
// translated them into gorm.ErrDuplicatedKey.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "FOREIGN KEY constraint") ||
		strings.Contains(errStr, "23503")
}
