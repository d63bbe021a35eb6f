package services

import (
	"database/sql"
	"errors"
)

// isNoRows reports whether err is the database's empty-result error.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
