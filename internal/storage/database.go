package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// SQLite stores time as text; a fixed-width layout keeps ORDER BY correct.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// InitDB opens the sqlite database at path and creates the schema.
// Use ":memory:" for an ephemeral database.
func InitDB(path string) error {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("InitDB(): failed to open database: %w", err)
	}
	// One connection: shares :memory: databases and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return fmt.Errorf("InitDB(): failed to connect to database: %w", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL UNIQUE,
			"display_name" TEXT NOT NULL,
			"total_score" INTEGER NOT NULL DEFAULT 0,
			"actions_count" INTEGER NOT NULL DEFAULT 0,
			"created_at" TEXT NOT NULL,
			"last_active" TEXT NOT NULL
	);`
	createActionsTable := `
	CREATE TABLE IF NOT EXISTS actions (
			"id" TEXT PRIMARY KEY,
			"username" TEXT NOT NULL,
			"action" TEXT NOT NULL,
			"points" INTEGER NOT NULL,
			"description" TEXT,
			"created_at" TEXT NOT NULL,
			FOREIGN KEY(username) REFERENCES users(username)
	);`
	createPledgesTable := `
	CREATE TABLE IF NOT EXISTS pledges (
			"id" TEXT PRIMARY KEY,
			"username" TEXT NOT NULL,
			"display_name" TEXT NOT NULL,
			"pledge_text" TEXT NOT NULL,
			"likes" INTEGER NOT NULL DEFAULT 0,
			"created_at" TEXT NOT NULL
	);`
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_users_total_score ON users(total_score)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_username ON actions(username)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_created_at ON actions(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_pledges_created_at ON pledges(created_at)`,
	}

	for _, stmt := range append([]string{createUsersTable, createActionsTable, createPledgesTable}, indexes...) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("InitDB(): failed to create schema: %w", err)
		}
	}
	return nil
}

// Close releases the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowFunc is swapped in tests.
var nowFunc = time.Now
