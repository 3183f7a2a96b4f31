package callables

import (
	"github.com/reusee/taibind/objects"
	"github.com/ygrebnov/errorc"
)

// Callable is a copyable handle to a Custom.
// The zero value is the null callable.
type Callable struct {
	custom Custom
}

func New(custom Custom) Callable {
	return Callable{
		custom: custom,
	}
}

func (c Callable) Custom() Custom {
	return c.custom
}

func (c Callable) IsNull() bool {
	return c.custom == nil
}

func (c Callable) IsValid() bool {
	return c.custom != nil && c.custom.IsValid()
}

func (c Callable) Object() objects.ID {
	if c.custom == nil {
		return 0
	}
	return c.custom.Object()
}

func (c Callable) ArgumentCount() (int, bool) {
	if c.custom == nil {
		return 0, false
	}
	return c.custom.ArgumentCount()
}

func (c Callable) Method() string {
	if c.custom == nil {
		return ""
	}
	return c.custom.Method()
}

func (c Callable) Call(args ...any) (any, error) {
	return c.CallV(args)
}

func (c Callable) CallV(args []any) (any, error) {
	if c.custom == nil {
		return nil, errorc.With(
			ErrInvalidMethod,
			errorc.String(ErrorFieldMethod, "null"),
		)
	}
	return c.custom.Call(args)
}

func (c Callable) Hash() uint64 {
	if c.custom == nil {
		return 0
	}
	return c.custom.Hash()
}

func (c Callable) Equal(other Callable) bool {
	if c.custom == nil || other.custom == nil {
		return c.custom == nil && other.custom == nil
	}
	if c.custom == other.custom {
		return true
	}
	comparator := c.custom.Comparator()
	if comparator != other.custom.Comparator() {
		return false
	}
	return comparator.Equal(c.custom, other.custom)
}

func (c Callable) Less(other Callable) bool {
	return Compare(c, other) < 0
}

// Compare orders callables: null first, then by comparator ordinal, then by
// the comparator itself.
func Compare(a, b Callable) int {
	switch {
	case a.custom == nil && b.custom == nil:
		return 0
	case a.custom == nil:
		return -1
	case b.custom == nil:
		return 1
	}
	if a.custom == b.custom {
		return 0
	}
	ca, cb := a.custom.Comparator(), b.custom.Comparator()
	if ca != cb {
		oa, ob := ca.Ordinal(), cb.Ordinal()
		switch {
		case oa < ob:
			return -1
		case oa > ob:
			return 1
		}
		return 0
	}
	if ca.Less(a.custom, b.custom) {
		return -1
	}
	if ca.Less(b.custom, a.custom) {
		return 1
	}
	return 0
}

func (c Callable) String() string {
	if c.custom == nil {
		return "null::null"
	}
	return c.custom.String()
}
