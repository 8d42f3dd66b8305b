package postgres

import (
	"strings"

	"trailpack/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports a unique index rejection.
// Translated GORM errors are checked first; the message fallback covers
// connections opened without TranslateError.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}
