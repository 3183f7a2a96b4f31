package binds

import (
	"cmp"
	"hash/maphash"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/objects"
)

var seed = maphash.MakeSeed()

// key is everything that distinguishes two bindings of the same kind.
// method is the funcval address from funcID. Static bindings leave registry and
// object zero.
type key struct {
	registry uint64
	object   objects.ID
	method   uintptr
}

func (k key) compare(other key) int {
	if c := cmp.Compare(k.registry, other.registry); c != 0 {
		return c
	}
	if c := cmp.Compare(k.object, other.object); c != 0 {
		return c
	}
	return cmp.Compare(k.method, other.method)
}

type binding interface {
	callables.Custom
	bindingIdentity() *identity
}

// identity is embedded in every binding.
type identity struct {
	kind *kind
	key  key
	hash uint64
	text string
}

// setup must be called once, after key is complete.
func (i *identity) setup(kind *kind, k key) {
	i.kind = kind
	i.key = k
	i.hash = maphash.Comparable(seed, struct {
		ordinal uint64
		key     key
	}{kind.ordinal, k})
}

func (i *identity) bindingIdentity() *identity {
	return i
}

func (i *identity) Hash() uint64 {
	return i.hash
}

func (i *identity) Comparator() callables.Comparator {
	return i.kind
}

func (i *identity) String() string {
	return i.text
}

func (i *identity) Method() string {
	return i.text
}

func (i *identity) setText(text string) {
	if !DebugEnabled {
		return
	}
	i.text = text
}
