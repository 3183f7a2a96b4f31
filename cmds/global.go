package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}

func (p *Executor) PrintUsage() {
	p.printUsage(p.commands, 0)
}

func (p *Executor) printUsage(commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		names := append([]string{name}, command.Aliases...)
		fmt.Fprintf(os.Stderr, "%s%s", strings.Repeat("\t", depth), strings.Join(names, " | "))
		if command.Description != "" {
			fmt.Fprintf(os.Stderr, "\t%s", command.Description)
		}
		fmt.Fprintln(os.Stderr)
		if len(command.Subs) > 0 {
			p.printUsage(command.Subs, depth+1)
		}
	}
}
