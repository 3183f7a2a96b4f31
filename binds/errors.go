package binds

import "github.com/ygrebnov/errorc"

var namespace = errorc.Namespace("binds")

// Construction errors. Factories panic with these.
var (
	ErrNotFunc          = namespace.NewError("not a function")
	ErrReceiverMismatch = namespace.NewError("receiver mismatch")
	ErrMethodValue      = namespace.NewError("method value cannot be bound statically")
	ErrNotRegistered    = namespace.NewError("instance not registered")
)

var newKey = errorc.KeyFactory("binds")

var (
	ErrorFieldType     = newKey("type")
	ErrorFieldExpected = newKey("expected", "receiver")
)
