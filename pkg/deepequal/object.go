package deepequal

import (
	"reflect"

	"github.com/gruntwork-io/go-utils/pkg/kind"
)

// indirect follows pointers until it reaches a non-pointer value.
func indirect(val reflect.Value) reflect.Value {
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return val
		}

		val = val.Elem()
	}

	return val
}

// ownKeys returns the enumerable own keys of an object: map keys, or exported struct field names.
func ownKeys(val reflect.Value) []reflect.Value {
	switch val.Kind() { //nolint:exhaustive
	case reflect.Map:
		return val.MapKeys()
	case reflect.Struct:
		var keys []reflect.Value

		for _, field := range reflect.VisibleFields(val.Type()) {
			if field.IsExported() && len(field.Index) == 1 {
				keys = append(keys, reflect.ValueOf(field.Name))
			}
		}

		return keys
	}

	return nil
}

// ownValue returns the value stored under the given key, or kind.Absent if the object does not have it.
func ownValue(val reflect.Value, key reflect.Value) any {
	switch val.Kind() { //nolint:exhaustive
	case reflect.Map:
		keyType := val.Type().Key()

		if !key.Type().AssignableTo(keyType) {
			if key.Kind() != keyType.Kind() || !key.Type().ConvertibleTo(keyType) {
				return kind.Absent
			}

			key = key.Convert(keyType)
		}

		if item := val.MapIndex(key); item.IsValid() {
			return item.Interface()
		}
	case reflect.Struct:
		if key.Kind() != reflect.String {
			return kind.Absent
		}

		field, ok := val.Type().FieldByName(key.String())
		if !ok || !field.IsExported() || len(field.Index) != 1 {
			return kind.Absent
		}

		return val.FieldByIndex(field.Index).Interface()
	}

	return kind.Absent
}
