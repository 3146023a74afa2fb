package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"mindfullearner/internal/apperr"
)

// isUniqueViolation reports whether err is a unique or primary key
// violation from either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
		}
	}
	return false
}

// wrap maps a driver error onto the API taxonomy. Unique violations become
// conflictReason when one is given; anything else is logged and hidden
// behind a StoreError.
func (s *Store) wrap(op string, err error, conflictReason string) error {
	if err == nil {
		return nil
	}
	if conflictReason != "" && isUniqueViolation(err) {
		return apperr.Conflict(conflictReason)
	}
	s.logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return apperr.Store(op, err)
}

// wrapRow is wrap for single-row reads where no row means NotFound.
func (s *Store) wrapRow(op string, err error, notFoundReason string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(notFoundReason)
	}
	return s.wrap(op, err, "")
}
