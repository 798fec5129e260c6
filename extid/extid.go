// Package extid locates and manipulates the external resource id field of an entity.
//
// The external id is the field that links an entity to its stored counterpart
// in a resource. It is found either by the `ext:"ID"` struct tag
// or by the conventional ID field name.
package extid

import (
	"errors"
	"reflect"

	"github.com/stewardkit/steward/reflects"
)

// Set links the received id value onto the entity's external id field.
func Set(ptr interface{}, id interface{}) error {
	r := reflect.ValueOf(ptr)

	if r.Kind() != reflect.Ptr {
		return errors.New("ptr should be given, else Pass By Value prevents setting the struct ID field remotely")
	}

	_, val, ok := LookupStructField(ptr)

	if !ok {
		return errors.New("could not locate ID field in the given structure")
	}

	val.Set(reflect.ValueOf(id))

	return nil
}

// Lookup returns the external id value of the entity,
// and reports whether a non empty id is present.
func Lookup(i interface{}) (id interface{}, ok bool) {
	_, val, ok := LookupStructField(i)
	if !ok {
		return nil, false
	}
	return val.Interface(), !reflects.IsValueEmpty(val)
}

// LookupStructField returns the struct field that holds the external id.
// The `ext:"ID"` tag takes precedence over a field named ID.
func LookupStructField(ent interface{}) (reflect.StructField, reflect.Value, bool) {
	val := reflects.BaseValueOf(ent)

	sf, byTag, ok := lookupByTag(val)
	if ok {
		return sf, byTag, true
	}

	const upper = `ID`
	if byName := val.FieldByName(upper); byName.Kind() != reflect.Invalid {
		sf, _ := val.Type().FieldByName(upper)
		return sf, byName, true
	}

	return reflect.StructField{}, reflect.Value{}, false
}

func lookupByTag(val reflect.Value) (reflect.StructField, reflect.Value, bool) {
	const (
		lower = "id"
		upper = "ID"
	)
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		structField := val.Type().Field(i)
		tag := structField.Tag

		if tagValue := tag.Get("ext"); tagValue == upper || tagValue == lower {
			return structField, valueField, true
		}
	}

	return reflect.StructField{}, reflect.Value{}, false
}
