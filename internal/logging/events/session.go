package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Save(window string, tabs int, selected string) {
	logging.Trace("session.save", map[string]interface{}{"window": window, "tabs": tabs, "selected": selected})
}

func (SessionTracer) Load(window string, tabs int) {
	logging.Trace("session.load", map[string]interface{}{"window": window, "tabs": tabs})
}

func (SessionTracer) Migrate(path string, version uint) {
	logging.Trace("session.migrate", map[string]interface{}{"path": path, "version": version})
}
