package persistence

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a store-level uniqueness
// failure (duplicate email, duplicate kau_id, duplicate one-to-one
// profile link). The error itself is propagated unchanged; this only
// classifies it for HTTP mapping.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// The pure-Go sqlite driver reports constraint failures as plain
	// strings.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
