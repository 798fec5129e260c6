// Package fixtures creates randomly populated entities for testing purposes.
package fixtures

import (
	"math/rand"
	"reflect"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/reflects"
)

// New returns a pointer to a populated instance of the given business entity.
// The external id field is left empty, so the returned entity can be handed
// straight to a resource for persistence.
// This is primarily and only used for testing.
func New(entity steward.Entity) steward.Entity {
	ptr := reflect.New(reflects.BaseTypeOf(entity))
	elem := ptr.Elem()

	for i := 0; i < elem.NumField(); i++ {
		if elem.Type().Field(i).Tag.Get(`ext`) == `ID` {
			continue
		}

		fv := elem.Field(i)

		if fv.CanSet() {
			newValue := newValue(fv)

			if newValue.IsValid() {
				fv.Set(newValue)
			}
		}
	}

	return ptr.Interface()
}

var mutex sync.Mutex

func newValue(value reflect.Value) reflect.Value {
	switch value.Type().Kind() {

	case reflect.Bool:
		mutex.Lock()
		defer mutex.Unlock()
		return reflect.ValueOf(randomdata.Boolean())

	case reflect.String:
		mutex.Lock()
		defer mutex.Unlock()
		return reflect.ValueOf(randomdata.SillyName())

	case reflect.Int:
		return reflect.ValueOf(rand.Int())

	case reflect.Int32:
		return reflect.ValueOf(rand.Int31())

	case reflect.Int64:
		return reflect.ValueOf(rand.Int63())

	case reflect.Float32:
		return reflect.ValueOf(rand.Float32())

	case reflect.Float64:
		return reflect.ValueOf(rand.Float64())

	case reflect.Struct:
		if value.Type() == reflect.TypeOf(time.Time{}) {
			return reflect.ValueOf(time.Now().Add(-time.Duration(rand.Intn(42)) * time.Hour).UTC())
		}
		return reflect.Value{}

	default:
		return reflect.Value{}

	}
}
