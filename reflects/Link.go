package reflects

import (
	"errors"
	"fmt"
	"reflect"
)

// Link will make the dst pointer be linked with the src value.
// If the src is a pointer to a value, the pointed value will be linked.
func Link(src, dst interface{}) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(fmt.Sprint(recovered))
		}
	}()

	value := reflect.ValueOf(src)

	if value.Kind() != reflect.Ptr {
		ptr := reflect.New(reflect.TypeOf(src))
		ptr.Elem().Set(value)
		value = ptr
	}

	reflect.ValueOf(dst).Elem().Set(value.Elem())

	return nil
}
