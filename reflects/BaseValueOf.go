package reflects

import "reflect"

// BaseValueOf returns the reflect value of i with pointer indirections removed.
func BaseValueOf(i interface{}) reflect.Value {
	v := reflect.ValueOf(i)

	for v.Type().Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return v
}
