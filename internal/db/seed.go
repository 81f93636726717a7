package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type seedEntry struct {
	key     string
	name    string
	kind    string
	parent  string
	size    string
	updated string
}

// Demo tree shown on a fresh install. Parents are referenced by key and must appear first.
var demoEntries = []seedEntry{
	{key: "contracts", name: "Contracts", kind: "folder", updated: "2024-01-15"},
	{key: "finance", name: "Finance", kind: "folder", updated: "2024-01-14"},
	{key: "marketing", name: "Marketing", kind: "folder", updated: "2024-01-12"},
	{key: "hr", name: "HR", kind: "folder", updated: "2024-01-10"},
	{name: "Apple Contract.pdf", kind: "pdf", parent: "contracts", size: "2.4 MB", updated: "2024-01-15"},
	{name: "Stripe Contract.pdf", kind: "pdf", parent: "contracts", size: "1.8 MB", updated: "2024-01-14"},
	{name: "NDA Template.doc", kind: "doc", parent: "contracts", size: "156 KB", updated: "2024-01-10"},
	{key: "monthly", name: "Monthly Report", kind: "folder", parent: "finance", updated: "2024-01-13"},
	{name: "Invoices", kind: "folder", parent: "finance", updated: "2024-01-12"},
	{name: "January 2024.xlsx", kind: "spreadsheet", parent: "monthly", size: "456 KB", updated: "2024-01-15"},
	{name: "December 2023.xlsx", kind: "spreadsheet", parent: "monthly", size: "423 KB", updated: "2024-01-01"},
	{name: "Brand Guidelines.pdf", kind: "pdf", parent: "marketing", size: "8.2 MB", updated: "2024-01-10"},
	{name: "Logo Pack.zip", kind: "image", parent: "marketing", size: "15.4 MB", updated: "2024-01-08"},
}

// SeedDemo fills an empty documents table with the demo tree and reports whether it did.
func SeedDemo(ctx context.Context, db *sql.DB, nextID func() int64) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return false, fmt.Errorf("count documents: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	keys := make(map[string]int64)
	for _, e := range demoEntries {
		id := nextID()
		if e.key != "" {
			keys[e.key] = id
		}

		var parentID interface{}
		if e.parent != "" {
			pid, ok := keys[e.parent]
			if !ok {
				return false, fmt.Errorf("seed %q: unknown parent %q", e.name, e.parent)
			}
			parentID = pid
		}
		var size interface{}
		if e.size != "" {
			size = e.size
		}

		day, err := time.Parse(time.DateOnly, e.updated)
		if err != nil {
			return false, fmt.Errorf("seed %q: %w", e.name, err)
		}
		stamp := day.UTC().Format(time.RFC3339Nano)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO documents (id, name, kind, parent_id, size, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, id, e.name, e.kind, parentID, size, stamp, stamp); err != nil {
			return false, fmt.Errorf("seed %q: %w", e.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	return true, nil
}
