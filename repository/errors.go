package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStoreUnavailable is returned when the repository has no usable database handle.
	// List methods return an empty slice alongside it so callers may fall back to it.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrNotFound is returned when a row does not exist or belongs to another owner.
	ErrNotFound = errors.New("not found")
	// ErrInvalidValue is returned when a value outside an enum set or a required empty
	// field reaches the storage layer.
	ErrInvalidValue = errors.New("invalid value")
)

// storeError classifies a database/sql error. Connection-level failures become
// ErrStoreUnavailable; anything else is wrapped with the operation name.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) ||
		strings.Contains(err.Error(), "database is closed") {
		return fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, args...))
}
