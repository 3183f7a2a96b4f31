package signals

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibind/configs"
	"github.com/reusee/taibind/deferred"
	"github.com/reusee/taibind/logs"
)

type Module struct {
	dscope.Module
	Deferred deferred.Module
}

type NewSignal func(name string) *Signal

func (Module) NewSignal(
	queue *deferred.Queue,
	logger logs.Logger,
	config configs.Config,
) NewSignal {
	return func(name string) *Signal {
		s := New(name, queue, logger)
		s.pruneInvalid = config.Signals.ShouldPruneInvalid()
		return s
	}
}
