package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Restore(window string, tabs int) {
	logging.Trace("app.restore", map[string]interface{}{"window": window, "tabs": tabs})
}

func (AppTracer) Stop() {
	logging.Trace("app.stop", nil)
}
