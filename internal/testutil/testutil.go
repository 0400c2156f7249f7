package testutil

import (
	"database/sql"
	"testing"

	"taskPlanner/internal/db"
)

// OpenInMemoryDB opens a named shared-cache in-memory SQLite database with migrations applied.
// The DB is closed through t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
