package debugs

import (
	"fmt"

	"github.com/reusee/taibind/callables"
	"go.starlark.net/starlark"
)

// Builtin exposes c to starlark. Positional arguments only.
func Builtin(name string, c callables.Callable) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(
		thread *starlark.Thread,
		fn *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
		}
		goArgs := make([]any, len(args))
		for i, arg := range args {
			v, err := fromStarlarkValue(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: argument %d: %w", fn.Name(), i, err)
			}
			goArgs[i] = v
		}
		ret, err := c.CallV(goArgs)
		if err != nil {
			return nil, err
		}
		return toStarlarkValue(ret), nil
	})
}
