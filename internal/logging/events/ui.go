package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (UITracer) Key(window, key string, cursor int) {
	logging.Trace("ui.key", map[string]interface{}{"window": window, "key": key, "cursor": cursor})
}

func (UITracer) Enter(window, tab, filter string) {
	logging.Trace("ui.enter", map[string]interface{}{"window": window, "tab": tab, "filter": filter})
}

func (UITracer) Mark(window, tab string, marked bool) {
	logging.Trace("ui.mark", map[string]interface{}{"window": window, "tab": tab, "marked": marked})
}

func (UITracer) Dismiss(window string) {
	logging.Trace("ui.dismiss", map[string]interface{}{"window": window})
}

func (FilterTracer) Open(window string) {
	logging.Trace("filter.open", map[string]interface{}{"window": window})
}

func (FilterTracer) Changed(window, filter string, matches int) {
	logging.Trace("filter.change", map[string]interface{}{"window": window, "filter": filter, "matches": matches})
}

func (FilterTracer) Cleared(window string) {
	logging.Trace("filter.clear", map[string]interface{}{"window": window})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, action string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "action": action})
}
