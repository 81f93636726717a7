package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"dashboard/backend/internal/db"
	"dashboard/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce initializes the generator once across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB opens a private in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared cache lets every connection of this *sql.DB see the same memory database;
	// the unique name keeps parallel tests apart.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedFolder inserts a folder row and returns its id.
func SeedFolder(t *testing.T, db *sql.DB, name string, parentID *int64) int64 {
	t.Helper()
	return seed(t, db, name, "folder", parentID, nil)
}

// SeedFile inserts a file row of the given kind ("pdf", "doc", ...) and returns its id.
func SeedFile(t *testing.T, db *sql.DB, name, kind string, parentID *int64, size string) int64 {
	t.Helper()
	var sizeVal *string
	if size != "" {
		sizeVal = &size
	}
	return seed(t, db, name, kind, parentID, sizeVal)
}

func seed(t *testing.T, db *sql.DB, name, kind string, parentID *int64, size *string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	var parentIDVal interface{}
	if parentID != nil {
		parentIDVal = *parentID
	}
	var sizeVal interface{}
	if size != nil {
		sizeVal = *size
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO documents (id, name, kind, parent_id, size, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, name, kind, parentIDVal, sizeVal, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed %s %q: %v", kind, name, err)
	}

	return id
}

// CountEntries returns the number of rows in documents.
func CountEntries(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&n); err != nil {
		t.Fatalf("failed to count documents: %v", err)
	}
	return n
}
