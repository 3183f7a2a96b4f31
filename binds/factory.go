package binds

import (
	"fmt"
	"reflect"

	"github.com/reusee/taibind/callables"
	"github.com/reusee/taibind/objects"
	"github.com/ygrebnov/errorc"
)

// Method binds a pointer receiver method expression, like (*T).Method, to instance.
// instance must be registered in an objects.Registry.
func Method[T any, PT interface {
	*T
	objects.Object
}](instance PT, fn any) callables.Callable {
	m := newMethod[T](instance, fn, false)
	m.setText(funcText(fn))
	return callables.New(m)
}

// ConstMethod binds a value receiver method expression, like T.Method, to instance.
func ConstMethod[T any, PT interface {
	*T
	objects.Object
}](instance PT, fn any) callables.Callable {
	m := newMethod[T](instance, fn, true)
	m.setText(funcText(fn))
	return callables.New(m)
}

// Static binds a function.
func Static(fn any) callables.Callable {
	s := newStatic(fn)
	s.setText(funcText(fn))
	return callables.New(s)
}

// MP binds fn to instance, choosing Method or ConstMethod by the receiver
// type of fn.
func MP[T any, PT interface {
	*T
	objects.Object
}](instance PT, fn any) callables.Callable {
	t := reflect.TypeOf(fn)
	constant := t != nil &&
		t.Kind() == reflect.Func &&
		t.NumIn() > 0 &&
		t.In(0) == reflect.TypeFor[T]()
	m := newMethod[T](instance, fn, constant)
	m.setText(funcText(fn))
	return callables.New(m)
}

// MPStatic is Static with the same label rules as MP.
func MPStatic(fn any) callables.Callable {
	return Static(fn)
}

// checkFunc validates fn. A non-nil receiver must be the first parameter type.
func checkFunc(fn any, receiver reflect.Type) reflect.Value {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(errorc.With(
			ErrNotFunc,
			errorc.String(ErrorFieldType, fmt.Sprintf("%T", fn)),
		))
	}
	t := v.Type()
	if receiver != nil {
		if t.NumIn() == 0 || t.In(0) != receiver {
			panic(errorc.With(
				ErrReceiverMismatch,
				errorc.String(ErrorFieldType, t.String()),
				errorc.String(ErrorFieldExpected, receiver.String()),
			))
		}
	} else if isMethodValue(v) {
		panic(errorc.With(
			ErrMethodValue,
			errorc.String(ErrorFieldType, funcName(v)),
		))
	}
	return v
}
