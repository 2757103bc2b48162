// Package sqlite implements the driven ports on an in-memory SQLite database.
// The database lives only as long as the process holds a connection to it;
// nothing is written to disk.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

// DB wraps a named in-memory database. SQLite shared cache mode reports table
// locks as SQLITE_LOCKED without honouring busy_timeout, so reads and writes
// go through one connection.
type DB struct {
	Conn *sql.DB
	name string
}

// NewDB opens the named in-memory database. Different names give
// independent databases within the same process.
func NewDB(ctx context.Context, name string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)",
		url.PathEscape(name),
	)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The in-memory database is dropped when its last connection closes.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{
		Conn: conn,
		name: name,
	}, nil
}

// Name returns the in-memory database name.
func (db *DB) Name() string {
	return db.name
}

// Close releases the connection, which discards the database contents.
func (db *DB) Close() error {
	if err := db.Conn.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
