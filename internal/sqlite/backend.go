// Package sqlite implements the descriptor Repository on SQLite.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/refbook/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "refbook.db"

// Backend implements types.Repository using SQLite as the durable store.
type Backend struct {
	mu    sync.RWMutex
	db    *sql.DB
	hooks []types.SaveHook
}

// Compile-time interface check: Backend must implement Repository.
var _ types.Repository = (*Backend)(nil)

// Open creates the data directory if needed, opens the database, and applies
// the schema. The schema uses IF NOT EXISTS throughout; opening an existing
// database leaves its rows in place.
func Open(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	return &Backend{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// AfterSave registers a hook fired synchronously after each successful write.
func (b *Backend) AfterSave(hook types.SaveHook) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, hook)
}

// fireAfterSave invokes every registered hook before the write returns, so a
// subsequent read by the same caller observes fresh data.
func (b *Backend) fireAfterSave(d *types.Descriptor, prevSymbol string) {
	b.mu.RLock()
	hooks := b.hooks
	b.mu.RUnlock()

	for _, h := range hooks {
		h(d, prevSymbol)
	}
}
