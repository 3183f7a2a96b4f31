package configs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reusee/dscope"
)

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, Schema)

	var n int
	err := loader.AssignFirst("deferred.max_calls", &n)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Fatalf("got %v", n)
	}

	var b bool
	err = loader.AssignFirst("signals.prune_invalid", &b)
	if err != nil {
		t.Fatal(err)
	}
	if !b {
		t.Fatal()
	}

	err = loader.AssignFirst("not", &n)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, Schema)

	var ns []int
	for value, err := range loader.IterCueValues("deferred.max_calls") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		ns = append(ns, n)
	}
	if str := fmt.Sprintf("%v", ns); str != "[16 32]" {
		t.Fatalf("got %q", str)
	}

	ns = ns[:0]
	for n, err := range All[int](loader, "deferred.max_calls") {
		if err != nil {
			t.Fatal(err)
		}
		ns = append(ns, n)
	}
	if str := fmt.Sprintf("%v", ns); str != "[16 32]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, Schema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test2.cue"}, Schema)
	if n := First[int](loader, "deferred.max_calls"); n != 32 {
		t.Fatalf("got %v", n)
	}
	if n := First[int](loader, "signals.nothing"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestConfig(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() FilePaths {
			return FilePaths{"testdata/test2.cue"}
		},
	).Call(func(
		config Config,
	) {
		if config.Deferred.MaxCalls != 32 {
			t.Fatalf("got %v", config.Deferred.MaxCalls)
		}
		if !config.Signals.ShouldPruneInvalid() {
			t.Fatal("should default to true")
		}
	})

	dscope.New(new(Module)).Call(func(
		config Config,
	) {
		if config.Deferred.MaxCalls != DefaultMaxDeferredCalls {
			t.Fatalf("got %v", config.Deferred.MaxCalls)
		}
	})
}

func TestAllError(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, Schema)
	n := 0
	for _, err := range All[int](loader, "deferred.max_calls") {
		n++
		if err == nil {
			t.Fatal("should error")
		}
	}
	if n != 1 {
		t.Fatalf("got %v", n)
	}
}

func TestFirstPanic(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, Schema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[int](loader, "deferred.max_calls")
}
