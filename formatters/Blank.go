package formatters

import (
	"fmt"
	"reflect"

	"github.com/stewardkit/steward/reflects"
)

// Blank renders the value, substituting Fallback when the value is empty.
func Blank(v interface{}) string {
	return BlankOr(v, Fallback)
}

// BlankOr renders the value, substituting the placeholder when the value is
// empty. Nil values, empty strings and zero length collections count as empty.
func BlankOr(v interface{}, placeholder string) string {
	if v == nil || reflects.IsValueEmpty(reflect.ValueOf(v)) {
		return placeholder
	}
	return fmt.Sprint(v)
}
