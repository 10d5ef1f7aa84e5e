// Package store owns every database operation. Handlers receive a
// constructed *Store instead of a shared global handle, so tests can
// substitute doubles behind small interfaces.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// --- Error kinds ---
// The storage layer reports failures as tagged errors so callers can
// match them exhaustively instead of probing driver error strings.

var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken means an admin with that email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidReference means a write pointed at a missing related row.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// CategoryInUseError rejects deleting a category that products still
// reference. Count is included in the client-facing message.
type CategoryInUseError struct {
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("Cannot delete category: %d product(s) are using it", e.Count)
}

// translatePQ maps the constraint violations we care about onto the
// tagged error kinds above.
func translatePQ(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrEmailTaken
		case "23503": // foreign_key_violation
			return ErrInvalidReference
		}
	}
	return err
}
