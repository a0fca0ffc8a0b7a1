package tabstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atomicstack/tabtray-control/internal/viewmodel"
)

// ErrNoAccount is returned by ClientTabs when no synced client is stored.
var ErrNoAccount = errors.New("tabstore: no sync account")

// PutClient stores a synced client and replaces its tabs.
func (s *Store) PutClient(ctx context.Context, client viewmodel.RemoteClient) error {
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sync_clients (guid, name) VALUES (?, ?)
			ON CONFLICT (guid) DO UPDATE SET name = excluded.name
		`, client.GUID, client.Name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sync_client_tabs WHERE client_guid = ?`, client.GUID); err != nil {
			return err
		}
		for i, tab := range client.Tabs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sync_client_tabs (client_guid, position, title, url) VALUES (?, ?, ?, ?)
			`, client.GUID, i, tab.Title, tab.URL)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storing client %s: %w", client.GUID, err)
	}
	return nil
}

// ClientGUIDs lists the stored synced clients.
func (s *Store) ClientGUIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT guid FROM sync_clients ORDER BY guid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guids []string
	for rows.Next() {
		var guid string
		if err := rows.Scan(&guid); err != nil {
			return nil, err
		}
		guids = append(guids, guid)
	}
	return guids, rows.Err()
}

// HasSyncableAccount reports whether any synced client is stored.
func (s *Store) HasSyncableAccount() bool {
	guids, err := s.ClientGUIDs(context.Background())
	return err == nil && len(guids) > 0
}

// ClientTabs returns every synced client with its tabs.
func (s *Store) ClientTabs(ctx context.Context) ([]viewmodel.RemoteClient, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.guid, c.name, t.title, t.url
		FROM sync_clients c
		LEFT JOIN sync_client_tabs t ON t.client_guid = c.guid
		ORDER BY c.name ASC, c.guid ASC, t.position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("loading synced tabs: %w", err)
	}
	defer rows.Close()

	var clients []viewmodel.RemoteClient
	for rows.Next() {
		var guid, name string
		var title, url sql.NullString
		if err := rows.Scan(&guid, &name, &title, &url); err != nil {
			return nil, err
		}
		if n := len(clients); n == 0 || clients[n-1].GUID != guid {
			clients = append(clients, viewmodel.RemoteClient{GUID: guid, Name: name, Tabs: []viewmodel.RemoteTab{}})
		}
		if url.Valid {
			last := &clients[len(clients)-1]
			last.Tabs = append(last.Tabs, viewmodel.RemoteTab{Title: title.String, URL: url.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, ErrNoAccount
	}
	return clients, nil
}
