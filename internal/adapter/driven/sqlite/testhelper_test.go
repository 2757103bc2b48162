package sqlite

import (
	"context"
	"testing"
)

// setupTestDB creates a migrated in-memory database named after the test so
// parallel tests stay isolated.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(context.Background(), t.Name())
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}

	if _, err := RunMigrations(db.Conn); err != nil {
		_ = db.Close()
		t.Fatalf("run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}
