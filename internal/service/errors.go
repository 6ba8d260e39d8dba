package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested chat does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForeignKeyViolation is returned when a log is appended to a chat that does not exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage error")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// StorageError wraps a failure of the storage engine that is not one of the
// named conditions above. Writes are not retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorage) true for any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
