package callables

import "github.com/reusee/taibind/objects"

// Custom is the type-erased implementation behind a Callable.
type Custom interface {
	Hash() uint64
	String() string
	Method() string
	// Comparator identifies the kind of the implementation.
	// Two customs with different comparators are never equal.
	Comparator() Comparator
	Object() objects.ID
	IsValid() bool
	ArgumentCount() (int, bool)
	Call(args []any) (any, error)
}

// Comparator compares two customs of the same kind.
// Implementations must be comparable with ==, one value per kind.
type Comparator interface {
	Equal(a, b Custom) bool
	Less(a, b Custom) bool
	// Ordinal orders comparators of different kinds.
	Ordinal() uint64
}
