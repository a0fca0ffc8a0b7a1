package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/atomicstack/tabtray-control/internal/logging"
	"github.com/atomicstack/tabtray-control/internal/logging/events"
)

// Task is a handle to one piece of asynchronous middleware work.
type Task struct {
	name string
	done chan struct{}
	err  error
}

// Name returns the label the task was started with.
func (t *Task) Name() string { return t.name }

// Done is closed once the task has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finished and returns its error.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Tasks runs and tracks asynchronous work. A failed task is logged; its
// error stays available through Wait.
type Tasks struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTasks returns a task group bound to parent.
func NewTasks(parent context.Context) *Tasks {
	ctx, cancel := context.WithCancel(parent)
	return &Tasks{ctx: ctx, cancel: cancel}
}

// Go runs fn on its own goroutine.
func (ts *Tasks) Go(name string, fn func(context.Context) error) *Task {
	task := &Task{name: name, done: make(chan struct{})}
	ts.wg.Add(1)
	events.Task.Start(name)
	go func() {
		defer ts.wg.Done()
		defer close(task.done)
		defer func() {
			if r := recover(); r != nil {
				task.err = fmt.Errorf("panic: %v", r)
				ts.report(task)
			}
		}()
		task.err = fn(ts.ctx)
		ts.report(task)
	}()
	return task
}

func (ts *Tasks) report(task *Task) {
	if task.err != nil {
		logging.Error(fmt.Errorf("task %s: %w", task.name, task.err))
		events.Task.Fail(task.name, task.err)
		return
	}
	events.Task.Done(task.name)
}

// Wait blocks until every task started so far, and every task those tasks
// started, has finished.
func (ts *Tasks) Wait() {
	ts.wg.Wait()
}

// Stop cancels the context handed to running tasks. It is only used on
// shutdown; individual tab operations are never cancelled.
func (ts *Tasks) Stop() {
	ts.cancel()
}
