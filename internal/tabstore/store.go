// Package tabstore persists window sessions, bookmarks and synced clients in
// SQLite.
package tabstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/tabtray-control/internal/logging/events"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const FileName = "tabs.db"

// Store manages persistent tab state in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ tabs.Persister = (*Store)(nil)

func openDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// Open opens the store at path, creating the file and applying migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	if err := runMigrations(path); err != nil {
		return nil, fmt.Errorf("migrating tab store: %w", err)
	}
	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening tab store: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// SaveSession replaces the stored tabs of window.
func (s *Store) SaveSession(ctx context.Context, window uuid.UUID, list []tabs.Tab, selected string) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_tabs WHERE window_uuid = ?`, window.String()); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO session_tabs (window_uuid, position, tab_uuid, url, title, favicon_url, has_home_screenshot, last_executed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, tab := range list {
			if tab.IsPrivate {
				continue
			}
			_, err := stmt.ExecContext(ctx, window.String(), i, tab.UUID, tab.URL, tab.Title,
				tab.FaviconURL, tab.HasHomeScreenshot, tab.LastExecuted.UnixNano())
			if err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO session_selection (window_uuid, tab_uuid)
			VALUES (?, ?)
		`, window.String(), selected)
		return err
	})
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	events.Session.Save(window.String(), len(list), selected)
	return nil
}

// LoadSession returns the stored tabs of window in order, and the selected
// tab UUID.
func (s *Store) LoadSession(ctx context.Context, window uuid.UUID) ([]tabs.Tab, string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tab_uuid, url, title, favicon_url, has_home_screenshot, last_executed
		FROM session_tabs
		WHERE window_uuid = ?
		ORDER BY position ASC
	`, window.String())
	if err != nil {
		return nil, "", fmt.Errorf("loading session: %w", err)
	}
	defer rows.Close()

	list := []tabs.Tab{}
	for rows.Next() {
		var tab tabs.Tab
		var executed int64
		if err := rows.Scan(&tab.UUID, &tab.URL, &tab.Title, &tab.FaviconURL, &tab.HasHomeScreenshot, &executed); err != nil {
			return nil, "", fmt.Errorf("scanning tab: %w", err)
		}
		tab.LastExecuted = time.Unix(0, executed).UTC()
		list = append(list, tab)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	var selected string
	err = s.db.QueryRowContext(ctx, `SELECT tab_uuid FROM session_selection WHERE window_uuid = ?`, window.String()).Scan(&selected)
	if err != nil && err != sql.ErrNoRows {
		return nil, "", fmt.Errorf("loading selection: %w", err)
	}
	events.Session.Load(window.String(), len(list))
	return list, selected, nil
}

// Windows lists every window with a stored session, oldest first.
func (s *Store) Windows(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT window_uuid FROM session_selection ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var windows []uuid.UUID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("stored window %q: %w", raw, err)
		}
		windows = append(windows, id)
	}
	return windows, rows.Err()
}

// DeleteSession forgets window.
func (s *Store) DeleteSession(ctx context.Context, window uuid.UUID) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_tabs WHERE window_uuid = ?`, window.String()); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM session_selection WHERE window_uuid = ?`, window.String())
		return err
	})
}
