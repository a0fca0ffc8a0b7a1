package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Dispatch(action string) {
	logging.Trace("store.dispatch", map[string]interface{}{"action": action})
}

func (StoreTracer) Queue(action string) {
	logging.Trace("store.queue", map[string]interface{}{"action": action})
}
