// Package storetest opens throwaway sqlite stores for tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"medtour-server/internal/database"
	"medtour-server/internal/store"
)

// New opens a fresh sqlite file under t.TempDir with the schema in
// place. The pool is closed when the test ends.
func New(t testing.TB) *store.Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.SQLite{}, filepath.Join(t.TempDir(), "medical.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.InitSchema(ctx, db, database.SQLite{}); err != nil {
		t.Fatalf("init test schema: %v", err)
	}
	return store.New(db)
}
