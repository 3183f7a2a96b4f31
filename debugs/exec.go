package debugs

import (
	"context"

	"github.com/reusee/taibind/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Exec runs a starlark script with globals and returns the resulting globals.
type Exec func(ctx context.Context, filename string, src string, globals map[string]any) (starlark.StringDict, error)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func predeclared(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

func (Module) Exec(
	logger logs.Logger,
) Exec {
	return func(ctx context.Context, filename string, src string, globals map[string]any) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "file", filename)
			},
		}
		ret, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, predeclared(globals))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return ret, nil
	}
}
