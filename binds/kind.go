package binds

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/reusee/taibind/callables"
)

type Variant uint8

const (
	VariantMethod Variant = iota + 1
	VariantConstMethod
	VariantStatic
)

func (v Variant) String() string {
	switch v {
	case VariantMethod:
		return "method"
	case VariantConstMethod:
		return "const method"
	case VariantStatic:
		return "static"
	}
	return "invalid"
}

type kindKey struct {
	variant   Variant
	signature reflect.Type
}

// kind is the comparator of every binding sharing a variant and a method type.
// Kinds are interned, so pointer identity is kind identity.
type kind struct {
	kindKey
	ordinal uint64
}

var (
	kinds       sync.Map // kindKey -> *kind
	kindOrdinal atomic.Uint64
)

func kindOf(variant Variant, signature reflect.Type) *kind {
	key := kindKey{
		variant:   variant,
		signature: signature,
	}
	if v, ok := kinds.Load(key); ok {
		return v.(*kind)
	}
	v, _ := kinds.LoadOrStore(key, &kind{
		kindKey: key,
		ordinal: kindOrdinal.Add(1),
	})
	return v.(*kind)
}

var _ callables.Comparator = new(kind)

func (k *kind) Equal(a, b callables.Custom) bool {
	return a.(binding).bindingIdentity().key == b.(binding).bindingIdentity().key
}

func (k *kind) Less(a, b callables.Custom) bool {
	return a.(binding).bindingIdentity().key.compare(b.(binding).bindingIdentity().key) < 0
}

func (k *kind) Ordinal() uint64 {
	return k.ordinal
}
