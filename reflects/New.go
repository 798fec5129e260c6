package reflects

import "reflect"

// New creates a pointer to a zero value of the base type of the received entity.
// The received entity may be a value or a pointer, only its type matters.
func New(entity interface{}) interface{} {
	return reflect.New(BaseTypeOf(entity)).Interface()
}
