package binds

import (
	"reflect"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/marshal"
	"github.com/reusee/taibind/objects"
)

// static binds a plain function. It has no target and is always valid.
type static struct {
	identity
	fn  reflect.Value
	sig *marshal.Signature
}

var _ callables.Custom = new(static)

func newStatic(fn any) *static {
	fnValue := checkFunc(fn, nil)
	s := &static{
		fn:  fnValue,
		sig: marshal.NewSignature(fnValue.Type(), 0),
	}
	s.setup(
		kindOf(VariantStatic, fnValue.Type()),
		key{
			method: funcID(fn),
		},
	)
	return s
}

func (s *static) Object() objects.ID {
	return 0
}

func (s *static) IsValid() bool {
	return true
}

func (s *static) ArgumentCount() (int, bool) {
	return s.sig.NumParams(), true
}

func (s *static) Call(args []any) (any, error) {
	return s.sig.Call(s.fn, args)
}
