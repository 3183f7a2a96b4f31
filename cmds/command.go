package cmds

import (
	"fmt"
	"reflect"

	"github.com/reusee/taibind/binds"
	"github.com/reusee/taibind/callables"
)

type Command struct {
	Callable    callables.Callable
	Params      []reflect.Type
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func makes a command from a function returning nothing or an error.
func Func(fn any) *Command {
	fnType := reflect.TypeOf(fn)
	if fnType == nil || fnType.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	command := &Command{
		Callable: binds.Static(fn),
	}
	for i := range fnType.NumIn() {
		command.Params = append(command.Params, fnType.In(i))
	}

	return command
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
