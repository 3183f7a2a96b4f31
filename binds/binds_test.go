package binds

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/objects"
)

type counter struct {
	objects.Base
	n int
}

func (c *counter) Add(a, b int) int {
	c.n += a + b
	return a + b
}

func (c *counter) Sub(a, b int) int {
	return a - b
}

func (c *counter) Reset() {
	c.n = 0
}

func (c counter) Get() int {
	return c.n
}

func (c counter) Bump() int {
	c.n++
	return c.n
}

type other struct {
	objects.Base
}

func (o *other) Mul(a, b int) int {
	return a * b
}

var logged []string

func logString(s string) {
	logged = append(logged, s)
}

func square(n int) int {
	return n * n
}

func newCounter(registry *objects.Registry) *counter {
	c := new(counter)
	registry.Register(c)
	return c
}

func TestMethodCall(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)

	add := Method(c, (*counter).Add)
	res, err := add.Call(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res != 5 {
		t.Fatalf("got %v", res)
	}
	if c.n != 5 {
		t.Fatalf("got %v", c.n)
	}

	registry.Unregister(c.ObjectID())
	_, err = add.Call(2, 3)
	if !errors.Is(err, callables.ErrInstanceIsNull) {
		t.Fatalf("got %v", err)
	}
	if c.n != 5 {
		t.Fatal("method called on destroyed instance")
	}
}

func TestVoidMethod(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	c.n = 42
	res, err := Method(c, (*counter).Reset).Call()
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Fatalf("got %v", res)
	}
	if c.n != 0 {
		t.Fatalf("got %v", c.n)
	}
}

func TestConstMethod(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	c.n = 3

	get := ConstMethod(c, counter.Get)
	res, err := get.Call()
	if err != nil {
		t.Fatal(err)
	}
	if res != 3 {
		t.Fatalf("got %v", res)
	}

	// called on a copy
	res, err = ConstMethod(c, counter.Bump).Call()
	if err != nil {
		t.Fatal(err)
	}
	if res != 4 || c.n != 3 {
		t.Fatalf("got %v %v", res, c.n)
	}

	// sees later state of the instance
	c.n = 10
	res, _ = get.Call()
	if res != 10 {
		t.Fatalf("got %v", res)
	}

	registry.Unregister(c.ObjectID())
	if _, err := get.Call(); !errors.Is(err, callables.ErrInstanceIsNull) {
		t.Fatalf("got %v", err)
	}
}

func TestMarshalErrorsPassThrough(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	add := Method(c, (*counter).Add)
	if _, err := add.Call(1); !errors.Is(err, callables.ErrTooFewArguments) {
		t.Fatalf("got %v", err)
	}
	if _, err := add.Call(1, 2, 3); !errors.Is(err, callables.ErrTooManyArguments) {
		t.Fatalf("got %v", err)
	}
	if _, err := add.Call(1, "2"); !errors.Is(err, callables.ErrInvalidArgument) {
		t.Fatalf("got %v", err)
	}
}

func TestLiveness(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	add := Method(c, (*counter).Add)

	if add.Object() != c.ObjectID() {
		t.Fatalf("got %v", add.Object())
	}
	if !add.IsValid() {
		t.Fatal()
	}

	registry.Unregister(c.ObjectID())
	if add.Object().IsValid() {
		t.Fatalf("got %v", add.Object())
	}
	if add.IsValid() {
		t.Fatal()
	}
	_, err := add.Call(1, 2)
	if !errors.Is(err, callables.ErrInstanceIsNull) {
		t.Fatalf("got %v", err)
	}

	// a new object in the same slot must not revive the binding
	c2 := newCounter(registry)
	if add.IsValid() {
		t.Fatalf("stale binding resolved to %v", c2.ObjectID())
	}
}

func TestStatic(t *testing.T) {
	logged = nil
	log := Static(logString)
	if !log.IsValid() {
		t.Fatal()
	}
	if log.Object().IsValid() {
		t.Fatal()
	}
	n, ok := log.ArgumentCount()
	if !ok || n != 1 {
		t.Fatalf("got %v %v", n, ok)
	}
	res, err := log.Call("hello")
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Fatalf("got %v", res)
	}
	if !slices.Equal(logged, []string{"hello"}) {
		t.Fatalf("got %v", logged)
	}

	res, err = MPStatic(square).Call(4)
	if err != nil {
		t.Fatal(err)
	}
	if res != 16 {
		t.Fatalf("got %v", res)
	}

	// unaffected by any instance lifecycle
	registry := objects.NewRegistry()
	c := newCounter(registry)
	registry.Unregister(c.ObjectID())
	if _, err := log.Call("again"); err != nil {
		t.Fatal(err)
	}
}

func TestArgumentCount(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	for _, cs := range []struct {
		callable callables.Callable
		n        int
	}{
		{Method(c, (*counter).Add), 2},
		{Method(c, (*counter).Reset), 0},
		{ConstMethod(c, counter.Get), 0},
		{Static(square), 1},
	} {
		n, ok := cs.callable.ArgumentCount()
		if !ok || n != cs.n {
			t.Fatalf("%v: got %v %v", cs.callable, n, ok)
		}
	}
	// still reported for dead targets
	add := Method(c, (*counter).Add)
	registry.Unregister(c.ObjectID())
	if n, ok := add.ArgumentCount(); !ok || n != 2 {
		t.Fatalf("got %v %v", n, ok)
	}
}

func TestIdentityDeterminism(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)

	first := Method(c, (*counter).Add)
	firstKey := first.Custom().(binding).bindingIdentity().key
	for range 100 {
		again := Method(c, (*counter).Add)
		if again.Custom().(binding).bindingIdentity().key != firstKey {
			t.Fatal("key differs")
		}
		if again.Hash() != first.Hash() {
			t.Fatal("hash differs")
		}
		if !again.Equal(first) || !first.Equal(again) {
			t.Fatal("should be equal")
		}
		if callables.Compare(again, first) != 0 {
			t.Fatal("should order equal")
		}
	}

	for range 100 {
		if !Static(square).Equal(Static(square)) {
			t.Fatal()
		}
		if !ConstMethod(c, counter.Get).Equal(ConstMethod(c, counter.Get)) {
			t.Fatal()
		}
	}
}

func TestKindDiscrimination(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	o := new(other)
	registry.Register(o)

	add := Method(c, (*counter).Add)
	sub := Method(c, (*counter).Sub)
	mul := Method(o, (*other).Mul)

	if add.Equal(sub) {
		t.Fatal("different methods")
	}
	if add.Equal(mul) || mul.Equal(add) {
		t.Fatal("different kinds")
	}
	if add.Custom().Comparator() == mul.Custom().Comparator() {
		t.Fatal("different kinds share a comparator")
	}
	if add.Custom().Comparator() != sub.Custom().Comparator() {
		t.Fatal("same signature should share a kind")
	}

	// same method on different instances
	c2 := newCounter(registry)
	if add.Equal(Method(c2, (*counter).Add)) {
		t.Fatal("different instances")
	}

	// const and non-const over the same instance
	get := ConstMethod(c, counter.Get)
	getPtr := Method(c, (*counter).Get)
	if get.Equal(getPtr) {
		t.Fatal("const and non-const kinds")
	}

	// same registry slot, different objects
	add2 := Method(c2, (*counter).Add)
	registry.Unregister(c2.ObjectID())
	c3 := newCounter(registry)
	if add2.Equal(Method(c3, (*counter).Add)) {
		t.Fatal("recycled slot")
	}

	// same id number in different registries
	r1 := objects.NewRegistry()
	r2 := objects.NewRegistry()
	a := newCounter(r1)
	b := newCounter(r2)
	if a.ObjectID() != b.ObjectID() {
		t.Fatal()
	}
	if Method(a, (*counter).Add).Equal(Method(b, (*counter).Add)) {
		t.Fatal("different registries")
	}
}

func TestOrdering(t *testing.T) {
	registry := objects.NewRegistry()
	c1 := newCounter(registry)
	c2 := newCounter(registry)
	o := new(other)
	registry.Register(o)

	cs := []callables.Callable{
		Method(c2, (*counter).Sub),
		Static(square),
		Method(c1, (*counter).Add),
		ConstMethod(c1, counter.Get),
		Method(o, (*other).Mul),
		Method(c2, (*counter).Add),
		Static(logString),
		Method(c1, (*counter).Sub),
		Method(c1, (*counter).Reset),
		{},
	}

	for _, a := range cs {
		if a.Less(a) {
			t.Fatalf("%v < itself", a)
		}
		for _, b := range cs {
			ab, ba := a.Less(b), b.Less(a)
			if ab && ba {
				t.Fatalf("%v and %v both less", a, b)
			}
			if !ab && !ba && !a.Equal(b) {
				t.Fatalf("%v and %v tie but differ", a, b)
			}
			for _, c := range cs {
				if ab && b.Less(c) && !a.Less(c) {
					t.Fatalf("not transitive: %v %v %v", a, b, c)
				}
			}
		}
	}

	sorted := slices.Clone(cs)
	slices.SortFunc(sorted, callables.Compare)
	for i := 1; i < len(sorted); i++ {
		if !sorted[i-1].Less(sorted[i]) {
			t.Fatalf("not strictly ordered at %d: %v %v", i, sorted[i-1], sorted[i])
		}
	}
	if !sorted[0].IsNull() {
		t.Fatal("null first")
	}
}

func TestMapKey(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	m := callables.NewMap[int]()
	m.Set(Method(c, (*counter).Add), 1)
	m.Set(Static(square), 2)
	m.Set(Method(c, (*counter).Add), 3)
	if m.Len() != 2 {
		t.Fatalf("got %v", m.Len())
	}
	if v, ok := m.Get(Method(c, (*counter).Add)); !ok || v != 3 {
		t.Fatalf("got %v", v)
	}
	if _, ok := m.Get(Method(c, (*counter).Sub)); ok {
		t.Fatal()
	}
}

func TestMP(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	c.n = 7

	if !MP(c, (*counter).Add).Equal(Method(c, (*counter).Add)) {
		t.Fatal()
	}
	get := MP(c, counter.Get)
	if !get.Equal(ConstMethod(c, counter.Get)) {
		t.Fatal("should pick const variant")
	}
	res, err := get.Call()
	if err != nil {
		t.Fatal(err)
	}
	if res != 7 {
		t.Fatalf("got %v", res)
	}
}

func TestText(t *testing.T) {
	if !DebugEnabled {
		t.Skip()
	}
	registry := objects.NewRegistry()
	c := newCounter(registry)
	for _, cs := range []struct {
		callable callables.Callable
		text     string
	}{
		{MP(c, (*counter).Add), "counter.Add"},
		{ConstMethod(c, counter.Get), "counter.Get"},
		{MPStatic(square), "square"},
	} {
		if cs.callable.String() != cs.text {
			t.Fatalf("got %q, want %q", cs.callable.String(), cs.text)
		}
		if cs.callable.Method() != cs.text {
			t.Fatalf("got %q", cs.callable.Method())
		}
	}
}

func TestTextNotInIdentity(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	a := Method(c, (*counter).Add)
	b := Method(c, (*counter).Add)
	b.Custom().(binding).bindingIdentity().text = "something else"
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatal()
	}
}

func TestFactoryMisuse(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)

	expectPanic := func(want error, fn func()) {
		t.Helper()
		defer func() {
			t.Helper()
			p := recover()
			if p == nil {
				t.Fatal("should panic")
			}
			err, ok := p.(error)
			if !ok || !errors.Is(err, want) {
				t.Fatalf("got %v", p)
			}
		}()
		fn()
	}

	expectPanic(ErrNotFunc, func() {
		Method(c, 42)
	})
	expectPanic(ErrNotFunc, func() {
		Static(nil)
	})
	expectPanic(ErrReceiverMismatch, func() {
		Method(c, counter.Get)
	})
	expectPanic(ErrReceiverMismatch, func() {
		ConstMethod(c, (*counter).Add)
	})
	expectPanic(ErrReceiverMismatch, func() {
		Method(c, (*other).Mul)
	})
	expectPanic(ErrMethodValue, func() {
		Static(c.Add)
	})
	expectPanic(callables.ErrInstanceIsNull, func() {
		Method((*counter)(nil), (*counter).Add)
	})
	expectPanic(ErrNotRegistered, func() {
		Method(new(counter), (*counter).Add)
	})
}

func TestConcurrentCall(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	sub := Method(c, (*counter).Sub)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := sub.Call(i, 1)
			if err != nil {
				t.Error(err)
				return
			}
			if res != i-1 {
				t.Errorf("got %v", res)
			}
		}()
	}
	wg.Wait()
}

func TestClosureIdentity(t *testing.T) {
	var fns []func() int
	for i := range 3 {
		fns = append(fns, func() int {
			return i
		})
	}
	var cs []callables.Callable
	for _, fn := range fns {
		cs = append(cs, Static(fn))
	}
	for i := range cs {
		for j := range cs {
			if (i == j) != cs[i].Equal(cs[j]) {
				t.Fatalf("%d %d: got %v", i, j, cs[i].Equal(cs[j]))
			}
		}
		res, err := cs[i].Call()
		if err != nil {
			t.Fatal(err)
		}
		if res != i {
			t.Fatalf("got %v", res)
		}
	}

	// the same closure value binds to an equal callable
	if !Static(fns[1]).Equal(cs[1]) {
		t.Fatal("should be equal")
	}
	if Static(fns[1]).Hash() != cs[1].Hash() {
		t.Fatal("hash differs")
	}

	m := callables.NewMap[int]()
	for i, c := range cs {
		m.Set(c, i)
	}
	if m.Len() != len(cs) {
		t.Fatalf("got %v", m.Len())
	}
}

func TestMethodAfterUnregister(t *testing.T) {
	registry := objects.NewRegistry()
	c := newCounter(registry)
	registry.Unregister(c.ObjectID())
	func() {
		defer func() {
			p := recover()
			err, ok := p.(error)
			if !ok || !errors.Is(err, ErrNotRegistered) {
				t.Fatalf("got %v", p)
			}
		}()
		Method(c, (*counter).Add)
	}()

	// registered again under a new id
	id := registry.Register(c)
	add := Method(c, (*counter).Add)
	if add.Object() != id {
		t.Fatalf("got %v", add.Object())
	}
	res, err := add.Call(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res != 3 {
		t.Fatalf("got %v", res)
	}
}
