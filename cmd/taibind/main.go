package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibind/binds"
	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/cmds"
	"github.com/reusee/taibind/debugs"
	"github.com/reusee/taibind/deferred"
	"github.com/reusee/taibind/logs"
	"github.com/reusee/taibind/modes"
	"github.com/reusee/taibind/objects"
	"github.com/reusee/taibind/signals"
)

var (
	replSwitch = cmds.Switch("repl")
	evalFile   = cmds.Var[string]("eval")
)

func ce(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		ctx context.Context,
		logger logs.Logger,
		newSpan logs.NewSpan,
		registry *objects.Registry,
		newSignal signals.NewSignal,
		flush deferred.Flush,
		tap debugs.Tap,
		exec debugs.Exec,
	) {
		ctx, _ = newSpan(ctx, "")

		counter := &Counter{
			name: "counter",
		}
		registry.Register(counter)

		changed := newSignal("changed")
		add := binds.Method(counter, (*Counter).Add)
		value := binds.ConstMethod(counter, Counter.Value)
		describe := binds.MP(counter, Counter.Describe)
		ce(changed.Connect(add, signals.Deferred))
		ce(changed.Connect(binds.Static(logChange), signals.OneShot, counter.ObjectID()))

		globals := map[string]any{
			"add":      add,
			"value":    value,
			"describe": describe,
			"emit": binds.Static(func(args ...any) error {
				return changed.Emit(args...)
			}),
			"flush": binds.Static(func() (int, error) {
				return flush(ctx)
			}),
		}

		switch {

		case *evalFile != "":
			src, err := os.ReadFile(*evalFile)
			ce(err)
			_, err = exec(ctx, *evalFile, string(src), globals)
			ce(err)

		case *replSwitch:
			tap(ctx, "taibind", globals)

		default:
			demo(ctx, logger, registry, counter, changed, flush, globals)

		}
	})
}

func demo(
	ctx context.Context,
	logger logs.Logger,
	registry *objects.Registry,
	counter *Counter,
	changed *signals.Signal,
	flush deferred.Flush,
	globals map[string]any,
) {
	for _, c := range changed.Connections() {
		logger.InfoContext(ctx, "connection",
			"method", c.String(),
			"hash", c.Hash(),
			"object", c.Object(),
		)
	}

	ce(changed.Emit(1))
	ce(changed.Emit(2))
	n, err := flush(ctx)
	ce(err)
	logger.InfoContext(ctx, "flushed",
		"calls", n,
		"value", counter.value,
	)

	describe := globals["describe"].(callables.Callable)
	ret, err := describe.Call("demo: ")
	ce(err)
	logger.InfoContext(ctx, "describe", "result", ret)

	registry.Unregister(counter.ObjectID())
	_, err = describe.Call("demo: ")
	logger.InfoContext(ctx, "call after unregister",
		"valid", describe.IsValid(),
		"error", err,
	)
	ce(changed.Emit(3))
	logger.InfoContext(ctx, "emit after unregister",
		"connections", changed.Len(),
	)
}
