package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newswire/pkg/domain"
)

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isUniqueError checks if an error is a unique constraint violation
func isUniqueError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// withLockRetry runs fn with backoff while sqlite reports lock contention.
// Any other error stops retries and is returned as is.
func withLockRetry(ctx context.Context, fn func() error) error {
	var critical error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err != nil && isLockError(err) {
			return err // retry
		}
		critical = err
		return nil
	})
	if critical != nil {
		return critical
	}
	return err
}

// dbError wraps err with operation name and maps it to the domain error taxonomy
func dbError(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrValidation):
		return fmt.Errorf("%s: %w", op, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTimeout, err)
	case isUniqueError(err):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDatabase, err)
}

// now returns current time truncated to microseconds in UTC, the precision stored in sqlite
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// utc converts an optional time to UTC
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

// jsonSQL stores a typed value as a JSON text column
type jsonSQL[T any] struct {
	V T
}

// Value implements driver.Valuer for database storage
func (j jsonSQL[T]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for database retrieval
func (j *jsonSQL[T]) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, &j.V)
}

// expectAffected returns domain.ErrNotFound when the statement changed nothing
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
