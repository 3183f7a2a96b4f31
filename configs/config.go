package configs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibind/cmds"
	"github.com/reusee/taibind/vars"
)

const Schema = `
deferred?: {
	max_calls?: int & >0
}
signals?: {
	prune_invalid?: bool
}
`

const DefaultMaxDeferredCalls = 4096

type Config struct {
	Deferred DeferredConfig `json:"deferred"`
	Signals  SignalsConfig  `json:"signals"`
}

type DeferredConfig struct {
	MaxCalls int `json:"max_calls"`
}

type SignalsConfig struct {
	PruneInvalid *bool `json:"prune_invalid"`
}

// ShouldPruneInvalid defaults to true.
func (s SignalsConfig) ShouldPruneInvalid() bool {
	return vars.DerefOr(s.PruneInvalid, true)
}

var configFiles = cmds.Collect[string]("-config")

type Module struct {
	dscope.Module
}

type FilePaths []string

func (Module) FilePaths() FilePaths {
	return *configFiles
}

func (Module) Loader(
	paths FilePaths,
) Loader {
	return NewLoader(paths, Schema)
}

func (Module) Config(
	loader Loader,
) Config {
	config := Config{
		Deferred: First[DeferredConfig](loader, "deferred"),
		Signals:  First[SignalsConfig](loader, "signals"),
	}
	config.Deferred.MaxCalls = vars.FirstNonZero(
		config.Deferred.MaxCalls,
		DefaultMaxDeferredCalls,
	)
	return config
}
