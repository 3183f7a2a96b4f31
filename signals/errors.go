package signals

import "github.com/ygrebnov/errorc"

var namespace = errorc.Namespace("signals")

var (
	ErrAlreadyConnected = namespace.NewError("already connected")
	ErrNotConnected     = namespace.NewError("not connected")
	ErrNoQueue          = namespace.NewError("no deferred queue")
	ErrNullCallable     = namespace.NewError("null callable")
)

var newKey = errorc.KeyFactory("signals")

var (
	ErrorFieldSignal = newKey("signal")
	ErrorFieldMethod = newKey("method")
)
