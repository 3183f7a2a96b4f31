package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibind/debugs"
	"github.com/reusee/taibind/objects"
	"github.com/reusee/taibind/signals"
)

type Module struct {
	dscope.Module
	Objects objects.Module
	Signals signals.Module
	Debugs  debugs.Module
}
