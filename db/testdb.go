package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
)

// NewTestDB creates a fresh in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := Open(constant.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := EnsureSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("creating test database schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}
