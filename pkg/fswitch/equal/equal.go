package equal

import (
	"bytes"
	"reflect"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
)

// Fielder is implemented by entity types that define their own ordered list
// of fields for structural comparison.
type Fielder interface {
	Fields() []any
}

// Engine applies the equality rules. The zero value compares objects
// structurally.
type Engine struct {
	// SerializedObjects compares objects by their canonical JSON text instead
	// of structurally.
	SerializedObjects bool
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal applies the rules of the zero Engine.
func Equal(a, b any) bool {
	return Engine{}.Equal(a, b)
}

// Equal reports whether a and b are equal. It never panics.
func (e Engine) Equal(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}

	switch {
	case ka.Primitive():
		return Identical(a, b)
	case ka == Sequence:
		return sequences(reflect.ValueOf(a), reflect.ValueOf(b))
	case ka == Callable:
		return thunks(reflect.ValueOf(a), reflect.ValueOf(b))
	case ka == Object:
		return e.objects(a, b)
	}
	return false
}

// Identical reports strict identity. Comparable values use ==, slices, maps
// and funcs compare by address, everything else is not identical.
func Identical(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	if ta.Comparable() {
		// interface fields holding non-comparable values still panic
		defer func() {
			if recover() != nil {
				same = false
			}
		}()
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Pointer() == vb.Pointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

func sequences(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.Len() {
		if !Identical(a.Index(i).Interface(), b.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func thunks(a, b reflect.Value) bool {
	if a.IsNil() || b.IsNil() {
		return a.IsNil() && b.IsNil()
	}
	if !producer(a.Type()) || !producer(b.Type()) {
		return false
	}
	return Identical(a.Call(nil)[0].Interface(), b.Call(nil)[0].Interface())
}

func producer(t reflect.Type) bool {
	return t.NumIn() == 0 && !t.IsVariadic() && t.NumOut() > 0
}

func (e Engine) objects(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if e.SerializedObjects {
		return serialized(a, b)
	}
	if an, bn := nilPointer(a), nilPointer(b); an || bn {
		return an && bn
	}
	if fa, ok := a.(Fielder); ok {
		return e.fields(fa.Fields(), b.(Fielder).Fields())
	}
	return cmp.Equal(a, b, exportAll)
}

func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (e Engine) fields(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !e.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func serialized(a, b any) bool {
	ta, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(a)
	if err != nil {
		return false
	}
	tb, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ta, tb)
}
