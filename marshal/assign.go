package marshal

import (
	"fmt"
	"math"
	"reflect"
)

// Assign converts val to a value assignable to t.
// Numbers convert between kinds when no precision is lost.
func Assign(val any, t reflect.Type) (reflect.Value, error) {
	if val == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("cannot use nil as %v", t)
		}
	}

	v := reflect.ValueOf(val)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	switch {
	case isInt(v.Kind()) || isUint(v.Kind()) || isFloat(v.Kind()):
		if ret, ok := convertNumber(v, t); ok {
			return ret, nil
		}
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		// named types sharing an underlying type
		switch t.Kind() {
		case reflect.String, reflect.Bool, reflect.Slice, reflect.Map, reflect.Struct, reflect.Func:
			return v.Convert(t), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("cannot use %v (type %v) as %v", val, v.Type(), t)
}

func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	ret := reflect.New(t).Elem()
	switch {

	case isInt(t.Kind()):
		var i int64
		switch {
		case isInt(v.Kind()):
			i = v.Int()
		case isUint(v.Kind()):
			u := v.Uint()
			if u > math.MaxInt64 {
				return ret, false
			}
			i = int64(u)
		case isFloat(v.Kind()):
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return ret, false
			}
			i = int64(f)
		}
		if ret.OverflowInt(i) {
			return ret, false
		}
		ret.SetInt(i)
		return ret, true

	case isUint(t.Kind()):
		var u uint64
		switch {
		case isInt(v.Kind()):
			i := v.Int()
			if i < 0 {
				return ret, false
			}
			u = uint64(i)
		case isUint(v.Kind()):
			u = v.Uint()
		case isFloat(v.Kind()):
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return ret, false
			}
			u = uint64(f)
		}
		if ret.OverflowUint(u) {
			return ret, false
		}
		ret.SetUint(u)
		return ret, true

	case isFloat(t.Kind()):
		var f float64
		switch {
		case isInt(v.Kind()):
			f = float64(v.Int())
		case isUint(v.Kind()):
			f = float64(v.Uint())
		case isFloat(v.Kind()):
			f = v.Float()
		}
		if ret.OverflowFloat(f) {
			return ret, false
		}
		ret.SetFloat(f)
		return ret, true

	}
	return ret, false
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
