package reflects

import "reflect"

// IsValueEmpty reports whether val holds its type's empty value.
// Nil pointers, nil or zero length slices and maps count as empty,
// and pointers are judged by the value they point to.
func IsValueEmpty(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Interface:
		return IsValueEmpty(val.Elem())
	case reflect.Slice, reflect.Map:
		if val.IsNil() {
			return true
		}
		return val.Len() == 0
	case reflect.Ptr:
		if val.IsNil() {
			return true
		}
		return IsValueEmpty(val.Elem())
	case reflect.Chan, reflect.Func:
		return val.IsNil()
	default:
		return !val.IsValid() || val.IsZero()
	}
}
