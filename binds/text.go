package binds

import (
	"reflect"
	"runtime"
	"strings"
)

func funcName(v reflect.Value) string {
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return f.Name()
}

func isMethodValue(v reflect.Value) bool {
	return strings.HasSuffix(funcName(v), "-fm")
}

// funcText turns "example.com/pkg.(*Foo).Bar" into "Foo.Bar".
func funcText(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	name := funcName(v)
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	name = strings.NewReplacer("(*", "", ")", "").Replace(name)
	return name
}
