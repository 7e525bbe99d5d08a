// Package sqlitestore holds the SQLite-backed record stores of the fleet: users,
// products and the purchase ledger. Each store owns its own database file, mirroring
// the one-database-per-service layout of the fleet.
package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// open opens (creating if needed) the SQLite database at dir/name with WAL mode and a
// busy timeout for concurrent writers, and applies schema.
//
// Parameters: dir — data directory (created with 0700 when missing); name — database
// file name (e.g. "orders.db"); schema — CREATE TABLE IF NOT EXISTS statement.
//
// Returns: (*sql.DB, nil) or (nil, error) on directory, open or schema error.
//
// Called from NewUsers, NewProducts and NewLedger.
func open(dir, name, schema string) (*sql.DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	path := filepath.Join(dir, name)
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return db, nil
}
