package reflects

import "reflect"

// BaseTypeOf returns the underlying struct type of i, with pointer indirections removed.
func BaseTypeOf(i interface{}) reflect.Type {
	t := reflect.TypeOf(i)

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
