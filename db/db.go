package db

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	_ "modernc.org/sqlite"
)

// Open connects to the configured backing store. SQLite is limited to a single
// connection so write transactions are serialized.
func Open(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case constant.DriverMySQL:
		conn, err := sqlx.Connect(driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("connecting mysql: %w", err)
		}
		return conn, nil
	case constant.DriverSQLite:
		conn, err := sqlx.Connect(driver, SQLiteDSN(dsn))
		if err != nil {
			return nil, fmt.Errorf("connecting sqlite: %w", err)
		}
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLiteDSN appends the pragmas every connection needs.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	if path == ":memory:" {
		path = "file::memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}

// ForUpdate returns the row lock suffix for the driver behind q.
// SQLite has no row locks; its single writer connection gives the same guarantee.
func ForUpdate(q interface{ DriverName() string }) string {
	if q.DriverName() == constant.DriverMySQL {
		return " FOR UPDATE"
	}
	return ""
}

// ForShare returns the shared row lock suffix for the driver behind q. Readers
// holding it block deletes of the row but not other readers.
func ForShare(q interface{ DriverName() string }) string {
	if q.DriverName() == constant.DriverMySQL {
		return " LOCK IN SHARE MODE"
	}
	return ""
}
