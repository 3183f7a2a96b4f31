package callables

import "github.com/ygrebnov/errorc"

const Namespace = "callables"

var namespace = errorc.Namespace(Namespace)

// Call errors. Use errors.Is to match.
var (
	ErrInvalidMethod    = namespace.NewError("invalid method")
	ErrInstanceIsNull   = namespace.NewError("instance is null")
	ErrInvalidArgument  = namespace.NewError("invalid argument")
	ErrTooManyArguments = namespace.NewError("too many arguments")
	ErrTooFewArguments  = namespace.NewError("too few arguments")
)

var newKey = errorc.KeyFactory(Namespace)

// Structured error fields.
var (
	ErrorFieldObjectID = newKey("object_id")
	ErrorFieldMethod   = newKey("method")
	ErrorFieldIndex    = newKey("index", "argument")
	ErrorFieldExpected = newKey("expected", "argument")
	ErrorFieldGot      = newKey("got", "argument")
	ErrorFieldCause    = newKey("cause")
)
