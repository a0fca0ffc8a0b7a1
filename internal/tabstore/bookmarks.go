package tabstore

import (
	"context"
	"fmt"
	"time"
)

// Bookmark is a saved URL.
type Bookmark struct {
	URL       string
	Title     string
	CreatedAt time.Time
}

func (s *Store) IsBookmarked(ctx context.Context, url string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookmarks WHERE url = ?`, url).Scan(&n); err != nil {
		return false, fmt.Errorf("checking bookmark: %w", err)
	}
	return n > 0, nil
}

// CreateBookmark saves url, replacing the title of an existing bookmark.
func (s *Store) CreateBookmark(ctx context.Context, url, title string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (url, title, created_at) VALUES (?, ?, ?)
		ON CONFLICT (url) DO UPDATE SET title = excluded.title
	`, url, title, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("creating bookmark: %w", err)
	}
	return nil
}

// Bookmarks returns every bookmark, oldest first.
func (s *Store) Bookmarks(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT url, title, created_at FROM bookmarks ORDER BY created_at ASC, url ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		var b Bookmark
		var created int64
		if err := rows.Scan(&b.URL, &b.Title, &created); err != nil {
			return nil, err
		}
		b.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, b)
	}
	return out, rows.Err()
}
