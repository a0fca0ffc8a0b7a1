package dispatcher

import (
	"fmt"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/backend"
	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/prefs"
	"github.com/atomicstack/tabtray-control/internal/redux"
	"github.com/google/uuid"
)

type Result struct {
	InactiveUpdated bool
	PrefsUpdated    bool
	Dispatched      int
}

// Windows lists the windows that receive app wide updates.
type Windows interface {
	Windows() []uuid.UUID
}

// Dispatcher turns watcher events into store actions.
type Dispatcher struct {
	store   redux.Dispatcher[action.Action]
	windows Windows
	onPrefs func(prefs.Prefs)
}

// New returns a dispatcher feeding store. onPrefs, when set, runs before the
// theme values are dispatched.
func New(store redux.Dispatcher[action.Action], windows Windows, onPrefs func(prefs.Prefs)) *Dispatcher {
	return &Dispatcher{store: store, windows: windows, onPrefs: onPrefs}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		logging.Error(fmt.Errorf("%s watcher: %w", evt.Kind, evt.Err))
		return res
	}
	switch evt.Kind {
	case backend.KindInactiveTabs:
		if evt.Window == uuid.Nil {
			return res
		}
		d.store.Dispatch(action.InactiveTabsChanged{Context: action.In(evt.Window)})
		res.InactiveUpdated = true
		res.Dispatched++
	case backend.KindPrefs:
		p, ok := evt.Data.(prefs.Prefs)
		if !ok {
			return res
		}
		if d.onPrefs != nil {
			d.onPrefs(p)
		}
		settings := prefs.ThemeSettings(p)
		for _, window := range d.windows.Windows() {
			d.store.Dispatch(action.ReceivedThemeManagerValues{Context: action.In(window), Settings: settings})
			res.Dispatched++
		}
		res.PrefsUpdated = true
	}
	return res
}

// Run handles events until the channel closes.
func (d *Dispatcher) Run(events <-chan backend.Event) {
	for evt := range events {
		d.Handle(evt)
	}
}
