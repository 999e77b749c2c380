package equal

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Comparer decides equality of two values of the same entity type.
type Comparer[T any] func(a, b T) bool

// Strict compares with ==.
func Strict[T comparable]() Comparer[T] {
	return safe(func(a, b T) bool { return a == b })
}

// Shallow compares slices by length and element ==, without recursion.
func Shallow[E comparable]() Comparer[[]E] {
	return safe(func(a, b []E) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})
}

// Thunk compares two producers by the values they return.
func Thunk[T comparable]() Comparer[func() T] {
	return safe(func(a, b func() T) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return a() == b()
	})
}

// Structural compares the ordered field lists of two entities. Nil pointers
// equal only each other.
func Structural[T Fielder]() Comparer[T] {
	return safe(func(a, b T) bool {
		if an, bn := nilPointer(a), nilPointer(b); an || bn {
			return an && bn
		}
		return Engine{}.fields(a.Fields(), b.Fields())
	})
}

// Deep compares values recursively, unexported fields included. Map key
// order never matters.
func Deep[T any]() Comparer[T] {
	return safe(func(a, b T) bool {
		return cmp.Equal(a, b, exportAll)
	})
}

// Serialized compares the canonical JSON text of two values. Values that fail
// to serialize are unequal.
func Serialized[T any]() Comparer[T] {
	return safe(func(a, b T) bool {
		return serialized(a, b)
	})
}

// Dynamic applies the engine rules to the dynamic values, which is what an
// interface-typed subject needs.
func Dynamic[T any](e Engine) Comparer[T] {
	return func(a, b T) bool {
		return e.Equal(a, b)
	}
}

// For picks a Comparer for T with the zero Engine.
func For[T any]() Comparer[T] {
	return Using[T](Engine{})
}

// Using picks a Comparer for T once, from its static type. Interface types
// are decided per value.
func Using[T any](e Engine) Comparer[T] {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return Dynamic[T](e)
	}

	switch k := kindOfType(t); {
	case k.Primitive():
		return safe(func(a, b T) bool { return Identical(a, b) })
	case k == Sequence:
		return safe(func(a, b T) bool {
			return sequences(reflect.ValueOf(a), reflect.ValueOf(b))
		})
	case k == Callable:
		return safe(func(a, b T) bool {
			return thunks(reflect.ValueOf(a), reflect.ValueOf(b))
		})
	default:
		return safe(func(a, b T) bool { return e.objects(a, b) })
	}
}

func safe[T any](c func(a, b T) bool) Comparer[T] {
	return func(a, b T) (eq bool) {
		defer func() {
			if recover() != nil {
				eq = false
			}
		}()
		return c(a, b)
	}
}
