package database

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup matches no row. Handlers map
// it to a 404 instead of the generic failure message.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
