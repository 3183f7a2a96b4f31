package modes

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest runs in development mode. Its context ends with the test, so
// queue flushes and scripts started by a test do not outlive it.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Context() context.Context {
	return m.t.Context()
}
