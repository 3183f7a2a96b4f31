package marshal

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/taibind/callables"
	"github.com/ygrebnov/errorc"
)

var errorType = reflect.TypeFor[error]()

// Signature caches what a call through reflection needs to know about a func type.
type Signature struct {
	Type       reflect.Type
	Receivers  int
	Params     []reflect.Type
	Variadic   bool
	ErrorIndex int
	NumOut     int
}

// NewSignature inspects fnType. The first receivers parameters are supplied by
// the caller of CallMethod and are not counted as arguments.
func NewSignature(fnType reflect.Type, receivers int) *Signature {
	if fnType.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %v", fnType))
	}
	if fnType.NumIn() < receivers {
		panic(fmt.Errorf("%v has no receiver parameter", fnType))
	}
	s := &Signature{
		Type:       fnType,
		Receivers:  receivers,
		Variadic:   fnType.IsVariadic(),
		ErrorIndex: -1,
		NumOut:     fnType.NumOut(),
	}
	for i := receivers; i < fnType.NumIn(); i++ {
		s.Params = append(s.Params, fnType.In(i))
	}
	if s.NumOut > 0 {
		if fnType.Out(s.NumOut-1) == errorType {
			s.ErrorIndex = s.NumOut - 1
		}
	}
	return s
}

// NumParams counts declared parameters excluding receivers.
// A variadic parameter counts as one.
func (s *Signature) NumParams() int {
	return len(s.Params)
}

// Void reports whether a call produces no value besides a possible error.
func (s *Signature) Void() bool {
	if s.ErrorIndex >= 0 {
		return s.NumOut == 1
	}
	return s.NumOut == 0
}

// Call calls a function without receivers.
func (s *Signature) Call(fn reflect.Value, args []any) (any, error) {
	in, err := s.prepare(args)
	if err != nil {
		return nil, err
	}
	return s.results(fn.Call(in))
}

// CallMethod calls a method expression with receiver as its first parameter.
func (s *Signature) CallMethod(fn reflect.Value, receiver reflect.Value, args []any) (any, error) {
	in, err := s.prepare(args)
	if err != nil {
		return nil, err
	}
	in[0] = receiver
	return s.results(fn.Call(in))
}

func (s *Signature) prepare(args []any) ([]reflect.Value, error) {
	fixed := len(s.Params)
	if s.Variadic {
		fixed--
	}
	if len(args) < fixed {
		return nil, errorc.With(
			callables.ErrTooFewArguments,
			errorc.String(callables.ErrorFieldExpected, strconv.Itoa(fixed)),
			errorc.String(callables.ErrorFieldGot, strconv.Itoa(len(args))),
		)
	}
	if !s.Variadic && len(args) > fixed {
		return nil, errorc.With(
			callables.ErrTooManyArguments,
			errorc.String(callables.ErrorFieldExpected, strconv.Itoa(fixed)),
			errorc.String(callables.ErrorFieldGot, strconv.Itoa(len(args))),
		)
	}

	in := make([]reflect.Value, s.Receivers, s.Receivers+len(args))
	for i, arg := range args {
		var t reflect.Type
		if i < fixed {
			t = s.Params[i]
		} else {
			t = s.Params[fixed].Elem()
		}
		v, err := Assign(arg, t)
		if err != nil {
			return nil, errorc.With(
				callables.ErrInvalidArgument,
				errorc.String(callables.ErrorFieldIndex, strconv.Itoa(i)),
				errorc.String(callables.ErrorFieldExpected, t.String()),
				errorc.String(callables.ErrorFieldGot, fmt.Sprintf("%T", arg)),
				errorc.Error(callables.ErrorFieldCause, err),
			)
		}
		in = append(in, v)
	}
	return in, nil
}

func (s *Signature) results(outs []reflect.Value) (any, error) {
	if s.ErrorIndex >= 0 {
		if errValue := outs[s.ErrorIndex]; !errValue.IsNil() {
			return nil, errValue.Interface().(error)
		}
		outs = outs[:s.ErrorIndex]
	}
	switch len(outs) {
	case 0:
		return nil, nil
	case 1:
		return outs[0].Interface(), nil
	}
	ret := make([]any, 0, len(outs))
	for _, out := range outs {
		ret = append(ret, out.Interface())
	}
	return ret, nil
}
