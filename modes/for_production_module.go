package modes

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction provides ModeProduction, a nil *testing.T and a
// background context.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Context() context.Context {
	return context.Background()
}
