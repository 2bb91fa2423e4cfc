package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrConnectivity means the database could not be reached or timed out.
	ErrConnectivity = errors.New("database unavailable")
	// ErrConstraint means an integrity constraint rejected the statement.
	ErrConstraint = errors.New("constraint violation")
	// ErrQuery covers every other statement failure.
	ErrQuery = errors.New("query failed")
)

// Classify wraps a driver error with one of ErrConnectivity, ErrConstraint or ErrQuery.
// nil, sql.ErrNoRows and already classified errors are returned unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) || isClassified(err) {
		return err
	}

	switch {
	case isConnectivity(err):
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	case isConstraint(err):
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	default:
		return fmt.Errorf("%w: %w", ErrQuery, err)
	}
}

func isClassified(err error) bool {
	return errors.Is(err, ErrConnectivity) || errors.Is(err, ErrConstraint) || errors.Is(err, ErrQuery)
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 08: connection exception, 53300: too_many_connections, 57P01..03: shutdown
		switch {
		case pqErr.Code.Class() == "08":
			return true
		case pqErr.Code == "53300", pqErr.Code == "57P01", pqErr.Code == "57P02", pqErr.Code == "57P03":
			return true
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code() & 0xff
		return code == sqlite3.SQLITE_BUSY || code == sqlite3.SQLITE_LOCKED
	}
	return false
}

func isConstraint(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}

// PgCode returns the postgres error code and constraint for logging, if any.
func PgCode(err error) (code, constraint string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint
	}
	return "", ""
}
