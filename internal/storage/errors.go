package storage

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrForeignKeyViolation is returned when a chat log references a chat that does not exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// isForeignKeyError reports whether err is SQLite rejecting a FOREIGN KEY constraint.
func isForeignKeyError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
