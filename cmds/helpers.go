package cmds

import "reflect"

// Var defines name to set the value and name+"." to reset it to zero.
func Var[T any](name string) *T {
	value := new(T)
	typeName := reflect.TypeFor[T]().String()
	Define(name, Func(func(v T) {
		*value = v
	}).Desc("set "+typeName))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name to turn on and !name to turn off.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc("enable "+name))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("disable "+name))
	return value
}

// Collect defines name to append a value each time it occurs.
func Collect[T any](name string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc("append "+reflect.TypeFor[T]().String()))
	return values
}
