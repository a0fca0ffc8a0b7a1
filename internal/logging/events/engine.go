package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type EngineTracer struct{}

var Engine = EngineTracer{}

func (EngineTracer) Update(tab, field string) {
	logging.Trace("engine.update", map[string]interface{}{"tab": tab, "field": field})
}

func (EngineTracer) LongPress(tab string, x, y float64) {
	logging.Trace("engine.long-press", map[string]interface{}{"tab": tab, "x": x, "y": y})
}
