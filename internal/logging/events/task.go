package events

import "github.com/atomicstack/tabtray-control/internal/logging"

type TaskTracer struct{}

var Task = TaskTracer{}

func (TaskTracer) Start(name string) {
	logging.Trace("task.start", map[string]interface{}{"task": name})
}

func (TaskTracer) Done(name string) {
	logging.Trace("task.done", map[string]interface{}{"task": name})
}

func (TaskTracer) Fail(name string, err error) {
	logging.Trace("task.fail", map[string]interface{}{"task": name, "error": err.Error()})
}
