// Package payloads applies caller supplied attribute payloads onto entities.
//
// A payload is a transient field name to value mapping; it exists for the
// duration of a single create or update call and is never retained.
package payloads

import (
	"fmt"
	"reflect"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/extid"
	"github.com/stewardkit/steward/reflects"
)

// Keys under which an update payload may carry the external entity id.
const (
	idKeyLower = `id`
	idKeyUpper = `ID`
)

// Assign mass-assigns the payload values onto the entity the ptr points to.
// Keys are matched against exported field names.
// An unknown key or a value of the wrong type is an error,
// and assignment stops at the first offending key.
func Assign(ptr steward.Entity, p steward.Payload) error {
	val := reflect.ValueOf(ptr)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf(`ptr should be given, not %T`, ptr)
	}
	val = reflects.BaseValueOf(ptr)

	for name, value := range p {
		field := val.FieldByName(fieldNameFor(val, name))

		if !field.IsValid() || !field.CanSet() {
			return fmt.Errorf(`%T has no assignable %q attribute`, ptr, name)
		}

		rv := reflect.ValueOf(value)
		if !rv.IsValid() || !rv.Type().AssignableTo(field.Type()) {
			return fmt.Errorf(`%q attribute of %T doesn't accept %T as value`, name, ptr, value)
		}

		field.Set(rv)
	}

	return nil
}

// LookupID extracts the external entity id embedded in an update payload,
// and reports whether a non empty id was present.
// The id may be present under the "id"/"ID" key, or under the name of the
// entity's external id field.
func LookupID(p steward.Payload) (steward.ID, bool) {
	for _, key := range []string{idKeyUpper, idKeyLower} {
		if id, ok := p[key]; ok {
			return id, !reflects.IsValueEmpty(reflect.ValueOf(id))
		}
	}
	return nil, false
}

// fieldNameFor resolves a payload key to the entity's field name,
// honoring the ext:"ID" tag for the id key.
func fieldNameFor(val reflect.Value, name string) string {
	if name == idKeyLower || name == idKeyUpper {
		if sf, _, ok := extid.LookupStructField(val.Interface()); ok {
			return sf.Name
		}
	}
	return name
}
