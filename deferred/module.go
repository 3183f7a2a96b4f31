package deferred

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/taibind/configs"
	"github.com/reusee/taibind/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

func (Module) Queue(
	config configs.Config,
	logger logs.Logger,
) *Queue {
	return NewQueue(config.Deferred.MaxCalls, logger)
}

// Flush flushes the queue in a new span.
type Flush func(ctx context.Context) (int, error)

func (Module) Flush(
	queue *Queue,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Flush {
	return func(ctx context.Context) (int, error) {
		ctx, _ = newSpan(ctx, "")
		n, err := queue.Flush(ctx)
		logger.DebugContext(ctx, "deferred flush", "calls", n)
		return n, err
	}
}
