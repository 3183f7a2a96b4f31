package binds

import "unsafe"

// funcID returns the address of the funcval behind fn.
// Closures made from one literal share a code pointer but each capture has its
// own funcval. Top level functions and closures capturing nothing have a static
// funcval, so binding them twice gives the same id.
// fn must be a non-nil func.
func funcID(fn any) uintptr {
	// an interface holding a func stores the funcval pointer as its data word
	return uintptr((*[2]unsafe.Pointer)(unsafe.Pointer(&fn))[1])
}
