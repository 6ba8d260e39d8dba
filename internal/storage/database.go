package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Options tunes the SQLite connection.
type Options struct {
	// BusyTimeout bounds how long a connection waits for the write lock.
	BusyTimeout time.Duration
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{BusyTimeout: 5 * time.Second}
}

// New opens a SQLite database connection at the given path.
// Foreign keys are enabled through the DSN so every pooled connection enforces them
// (PRAGMA foreign_keys only applies to the connection it runs on).
// Transactions begin IMMEDIATE so writers take the lock up front.
func New(path string, opts Options) (*sql.DB, error) {
	if opts.BusyTimeout <= 0 {
		opts.BusyTimeout = DefaultOptions().BusyTimeout
	}

	db, err := sql.Open("sqlite3", dsn(path, opts))
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// uriPathEscaper escapes the characters SQLite treats specially in a file: URI path.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// dsn builds a file: URI for path. SQLite percent-decodes the path and
// stops it at the first '?' or '#', so those are escaped.
func dsn(path string, opts Options) string {
	q := url.Values{}
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", fmt.Sprintf("%d", opts.BusyTimeout.Milliseconds()))
	q.Set("_journal_mode", "WAL")
	q.Set("_txlock", "immediate")
	u := url.URL{Scheme: "file", Opaque: uriPathEscaper.Replace(path), RawQuery: q.Encode()}
	return u.String()
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
// Table and column names follow the ChatInfo/ChatLog schema other tools read.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS ChatInfo (
			chatId INTEGER PRIMARY KEY AUTOINCREMENT,
			chatName TEXT NOT NULL,
			watchingFolder TEXT NOT NULL,
			dbPath TEXT NOT NULL,
			llmType TEXT NOT NULL,
			llmArgs TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS ChatLog (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			chatId INTEGER NOT NULL,
			message TEXT NOT NULL,
			sender TEXT NOT NULL,
			createdAt DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now')),
			FOREIGN KEY (chatId) REFERENCES ChatInfo(chatId) ON DELETE CASCADE ON UPDATE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chatlog_chat_created ON ChatLog(chatId, createdAt, id);`,
		`CREATE INDEX IF NOT EXISTS idx_chatinfo_name ON ChatInfo(chatName);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Stats holds row counts and the on-disk size of the database.
type Stats struct {
	ChatCount int64
	LogCount  int64
	SizeBytes int64
}

// GetStats returns database statistics.
func GetStats(ctx context.Context, db *sql.DB) (Stats, error) {
	var stats Stats

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ChatInfo").Scan(&stats.ChatCount); err != nil {
		return Stats{}, fmt.Errorf("failed to count chats: %w", err)
	}
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ChatLog").Scan(&stats.LogCount); err != nil {
		return Stats{}, fmt.Errorf("failed to count chat logs: %w", err)
	}

	var pageCount, pageSize int64
	if err := db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err != nil {
		return Stats{}, fmt.Errorf("failed to get page count: %w", err)
	}
	if err := db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err != nil {
		return Stats{}, fmt.Errorf("failed to get page size: %w", err)
	}
	stats.SizeBytes = pageCount * pageSize

	return stats, nil
}
