package binds

import (
	"reflect"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/marshal"
	"github.com/reusee/taibind/objects"
	"github.com/ygrebnov/errorc"
)

// method binds an instance to a method expression.
// With constant set, the method has a value receiver and is called on a copy
// of the instance.
type method[T any] struct {
	identity
	instance *T
	registry *objects.Registry
	constant bool
	fn       reflect.Value
	sig      *marshal.Signature
}

var _ callables.Custom = new(method[int])

func newMethod[T any, PT interface {
	*T
	objects.Object
}](instance PT, fn any, constant bool) *method[T] {
	if (*T)(instance) == nil {
		panic(errorc.With(callables.ErrInstanceIsNull, errorc.String(callables.ErrorFieldMethod, funcText(fn))))
	}
	owner := instance.ObjectBase()
	if owner.ObjectRegistry() == nil {
		panic(errorc.With(
			ErrNotRegistered,
			errorc.String(callables.ErrorFieldMethod, funcText(fn)),
		))
	}

	receiverType := reflect.TypeFor[*T]()
	variant := VariantMethod
	if constant {
		receiverType = receiverType.Elem()
		variant = VariantConstMethod
	}
	fnValue := checkFunc(fn, receiverType)

	m := &method[T]{
		instance: (*T)(instance),
		registry: owner.ObjectRegistry(),
		constant: constant,
		fn:       fnValue,
		sig:      marshal.NewSignature(fnValue.Type(), 1),
	}
	m.setup(
		kindOf(variant, fnValue.Type()),
		key{
			registry: m.registry.Serial(),
			object:   owner.ObjectID(),
			method:   funcID(fn),
		},
	)
	return m
}

func (m *method[T]) alive() bool {
	_, ok := m.registry.Lookup(m.key.object)
	return ok
}

func (m *method[T]) Object() objects.ID {
	if !m.alive() {
		return 0
	}
	return m.key.object
}

func (m *method[T]) IsValid() bool {
	return m.Object().IsValid()
}

func (m *method[T]) ArgumentCount() (int, bool) {
	return m.sig.NumParams(), true
}

func (m *method[T]) Call(args []any) (any, error) {
	if !m.alive() {
		return nil, errorc.With(
			callables.ErrInstanceIsNull,
			errorc.String(callables.ErrorFieldObjectID, m.key.object.String()),
			errorc.String(callables.ErrorFieldMethod, m.text),
		)
	}
	receiver := reflect.ValueOf(m.instance)
	if m.constant {
		receiver = receiver.Elem()
	}
	return m.sig.CallMethod(m.fn, receiver, args)
}
