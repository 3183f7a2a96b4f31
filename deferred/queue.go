package deferred

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/logs"
	"github.com/ygrebnov/errorc"
)

var namespace = errorc.Namespace("deferred")

var ErrQueueFull = namespace.NewError("queue full")

var newKey = errorc.KeyFactory("deferred")

var (
	ErrorFieldMaxCalls = newKey("max_calls")
	ErrorFieldMethod   = newKey("method")
)

type call struct {
	callable callables.Callable
	args     []any
}

// Queue holds calls until Flush.
type Queue struct {
	maxCalls int
	logger   logs.Logger
	mu       sync.Mutex
	calls    []call
}

func NewQueue(maxCalls int, logger logs.Logger) *Queue {
	return &Queue{
		maxCalls: maxCalls,
		logger:   logger,
	}
}

func (q *Queue) Push(c callables.Callable, args ...any) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.calls) >= q.maxCalls {
		return errorc.With(
			ErrQueueFull,
			errorc.String(ErrorFieldMaxCalls, strconv.Itoa(q.maxCalls)),
			errorc.String(ErrorFieldMethod, c.String()),
		)
	}
	q.calls = append(q.calls, call{
		callable: c,
		args:     args,
	})
	return nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.calls)
}

func (q *Queue) take() (call, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.calls) == 0 {
		return call{}, false
	}
	c := q.calls[0]
	q.calls[0] = call{}
	q.calls = q.calls[1:]
	return c, true
}

// Flush runs queued calls in push order until the queue is empty, including
// calls pushed while flushing. Failed calls are logged and do not stop the flush.
func (q *Queue) Flush(ctx context.Context) (n int, err error) {
	var errs []error
	for {
		if e := ctx.Err(); e != nil {
			errs = append(errs, e)
			break
		}
		c, ok := q.take()
		if !ok {
			break
		}
		n++
		if _, e := c.callable.CallV(c.args); e != nil {
			q.logger.ErrorContext(ctx, "deferred call",
				"method", c.callable.String(),
				"error", e,
			)
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		err = logs.WrapSpan(ctx, errors.Join(errs...))
	}
	return
}
