package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type TabTracer struct{}

type PeekTracer struct{}

type skipReason string

const (
	ReasonMissingTab   skipReason = "missing-tab"
	ReasonMissingState skipReason = "missing-state"
	ReasonNoBackup     skipReason = "no-backup"
	ReasonNoManager    skipReason = "no-manager"
)

var (
	Tab  = TabTracer{}
	Peek = PeekTracer{}
)

func (TabTracer) LoadTray(window, panel string) {
	logging.Trace("tab.tray.load", map[string]interface{}{"window": window, "panel": panel})
}

func (TabTracer) LoadPanel(window string, private bool) {
	logging.Trace("tab.panel.load", map[string]interface{}{"window": window, "private": private})
}

func (TabTracer) ChangePanel(window, panel string) {
	logging.Trace("tab.panel.change", map[string]interface{}{"window": window, "panel": panel})
}

func (TabTracer) Add(window, tab string, private bool) {
	logging.Trace("tab.add", map[string]interface{}{"window": window, "tab": tab, "private": private})
}

func (TabTracer) Select(window, tab string) {
	logging.Trace("tab.select", map[string]interface{}{"window": window, "tab": tab})
}

func (TabTracer) Move(window string, from, to int) {
	logging.Trace("tab.move", map[string]interface{}{"window": window, "from": from, "to": to})
}

func (TabTracer) Close(window, tab string, last bool) {
	logging.Trace("tab.close", map[string]interface{}{"window": window, "tab": tab, "last": last})
}

func (TabTracer) CloseAll(window string, count int, private bool) {
	logging.Trace("tab.close-all", map[string]interface{}{"window": window, "count": count, "private": private})
}

func (TabTracer) UndoClose(window, tab string) {
	logging.Trace("tab.undo-close", map[string]interface{}{"window": window, "tab": tab})
}

func (TabTracer) UndoCloseAll(window string) {
	logging.Trace("tab.undo-close-all", map[string]interface{}{"window": window})
}

func (TabTracer) CloseInactive(window, tab string, position int) {
	logging.Trace("tab.inactive.close", map[string]interface{}{"window": window, "tab": tab, "position": position})
}

func (TabTracer) CloseAllInactive(window string, count int) {
	logging.Trace("tab.inactive.close-all", map[string]interface{}{"window": window, "count": count})
}

func (TabTracer) UndoCloseInactive(window, tab string) {
	logging.Trace("tab.inactive.undo-close", map[string]interface{}{"window": window, "tab": tab})
}

func (TabTracer) UndoCloseAllInactive(window string) {
	logging.Trace("tab.inactive.undo-close-all", map[string]interface{}{"window": window})
}

func (TabTracer) Skip(window, action string, reason skipReason) {
	logging.Trace("tab.skip", map[string]interface{}{"window": window, "action": action, "reason": string(reason)})
}

func (TabTracer) Error(window, op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("tab.error", map[string]interface{}{"window": window, "op": op, "error": err.Error()})
}

func (PeekTracer) Load(window, tab string, canBeSaved bool) {
	logging.Trace("peek.load", map[string]interface{}{"window": window, "tab": tab, "canBeSaved": canBeSaved})
}

func (PeekTracer) Bookmark(window, url string) {
	logging.Trace("peek.bookmark", map[string]interface{}{"window": window, "url": url})
}

func (PeekTracer) Share(window, url string) {
	logging.Trace("peek.share", map[string]interface{}{"window": window, "url": url})
}

func (PeekTracer) Copy(window, url string) {
	logging.Trace("peek.copy", map[string]interface{}{"window": window, "url": url})
}
