package background

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Task is a unit of deferred work queued during request handling.
// Tasks run after the response is sent; a failing task is logged and never
// affects the already-delivered response.
type Task func(ctx context.Context) error

// Tasks collects background work for a single request.
// Safe for concurrent Add calls; Run is invoked once by the dispatcher.
type Tasks struct {
	mu    sync.Mutex
	tasks []Task
}

// New creates an empty task list.
func New() *Tasks {
	return &Tasks{}
}

// Add queues a task for execution after the response is sent.
func (t *Tasks) Add(task Task) {
	if task == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks = append(t.tasks, task)
}

// Len returns the number of queued tasks.
func (t *Tasks) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tasks)
}

// Run executes all queued tasks in order. Task errors and panics are logged
// through the given logger and do not stop the remaining tasks.
func (t *Tasks) Run(ctx context.Context, logger *slog.Logger) {
	t.mu.Lock()
	tasks := t.tasks
	t.tasks = nil
	t.mu.Unlock()

	for _, task := range tasks {
		runTask(ctx, task, logger)
	}
}

func runTask(ctx context.Context, task Task, logger *slog.Logger) {
	defer func() {
		if p := recover(); p != nil {
			logger.ErrorContext(ctx, "background task panicked", "panic", fmt.Sprint(p))
		}
	}()

	if err := task(ctx); err != nil {
		logger.ErrorContext(ctx, "background task failed", "error", err)
	}
}

// tasksContextKey keys the request's task list in the context.
type tasksContextKey struct{}

// taskSetter is the minimal context surface needed to attach a task list.
type taskSetter interface {
	SetValue(key, val any)
}

// Attach stores the task list on the request context.
func Attach(ctx taskSetter, tasks *Tasks) {
	ctx.SetValue(tasksContextKey{}, tasks)
}

// FromContext returns the request's task list, or nil outside a request.
func FromContext(ctx context.Context) *Tasks {
	t, _ := ctx.Value(tasksContextKey{}).(*Tasks)
	return t
}

// Add queues a task on the request's task list. It is a no-op outside a
// request, so helpers can call it unconditionally.
func Add(ctx context.Context, task Task) {
	if t := FromContext(ctx); t != nil {
		t.Add(task)
	}
}
