package backend

import (
	"context"
	"sort"

	"github.com/atomicstack/tabtray-control/internal/prefs"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/google/uuid"
)

// InactiveTabsSource reports the inactive tab UUIDs of one window. Tabs age
// into the inactive set without any mutation, so this source relies on the
// watcher's interval.
func InactiveTabsSource(window uuid.UUID, r tabs.Reader) Source {
	return Source{
		Kind:   KindInactiveTabs,
		Window: window,
		Fetch: func(context.Context) (interface{}, error) {
			inactive := r.InactiveTabs()
			ids := make([]string, len(inactive))
			for i, tab := range inactive {
				ids[i] = tab.UUID
			}
			sort.Strings(ids)
			return ids, nil
		},
	}
}

// PrefsSource reloads preferences whenever changes fires.
func PrefsSource(m *prefs.Manager, changes <-chan struct{}) Source {
	return Source{
		Kind:    KindPrefs,
		Changes: changes,
		Fetch: func(context.Context) (interface{}, error) {
			return m.Reload()
		},
	}
}
