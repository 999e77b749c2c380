package equal

import "reflect"

// Kind is the fundamental kind of a value. Values of different kinds are
// never equal.
type Kind uint8

const (
	Absent Kind = iota
	Boolean
	Number
	String
	Complex
	Sequence
	Callable
	Object
	// Reference covers identity-like values: channels and unsafe pointers.
	Reference
)

var kindNames = [...]string{
	Absent:    "absent",
	Boolean:   "boolean",
	Number:    "number",
	String:    "string",
	Complex:   "complex",
	Sequence:  "sequence",
	Callable:  "callable",
	Object:    "object",
	Reference: "reference",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Primitive reports whether values of this kind compare by strict identity.
func (k Kind) Primitive() bool {
	switch k {
	case Absent, Boolean, Number, String, Complex, Reference:
		return true
	}
	return false
}

// KindOf returns the fundamental kind of v. Only an untyped nil is Absent,
// a typed nil pointer is an Object.
func KindOf(v any) Kind {
	if v == nil {
		return Absent
	}
	return kindOfType(reflect.TypeOf(v))
}

// SameKind reports whether a and b share a fundamental kind.
func SameKind(a, b any) bool {
	return KindOf(a) == KindOf(b)
}

func kindOfType(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return Number
	case reflect.Complex64, reflect.Complex128:
		return Complex
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Func:
		return Callable
	case reflect.Chan, reflect.UnsafePointer:
		return Reference
	default:
		return Object
	}
}
