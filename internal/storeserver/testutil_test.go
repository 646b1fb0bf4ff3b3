package storeserver

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/vmunix/vmanager/internal/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Each pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

// setupSeededStore returns a store loaded with testdata/db.json.
func setupSeededStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(setupTestDB(t))
	data, err := ReadSeedFile("testdata/db.json")
	if err != nil {
		t.Fatalf("read seed: %v", err)
	}
	if err := store.Load(context.Background(), data); err != nil {
		t.Fatalf("load seed: %v", err)
	}
	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
