package cloner

import (
	"reflect"
	"time"

	"github.com/gruntwork-io/go-utils/pkg/kind"
	goclone "github.com/huandu/go-clone"
)

// CloneArray clones slices and arrays, element by element.
func CloneArray(ctx Context) (any, bool) {
	if kind.Of(ctx.Value) != kind.Array {
		return nil, false
	}

	dst := rebuild(reflect.ValueOf(ctx.Value), func(src reflect.Value) reflect.Value {
		var dst reflect.Value

		switch src.Kind() { //nolint:exhaustive
		case reflect.Slice:
			if src.IsNil() {
				return src
			}

			dst = reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		case reflect.Array:
			dst = reflect.New(src.Type()).Elem()
		default:
			return src
		}

		for i := range src.Len() {
			ctx.setClone(dst.Index(i), src.Index(i))
		}

		return dst
	})

	return dst.Interface(), true
}

// CloneObject clones objects: maps with string keys, whose values are cloned and keys preserved, and structs,
// whose exported fields are cloned. Unexported struct fields are carried over as they are.
func CloneObject(ctx Context) (any, bool) {
	if kind.Of(ctx.Value) != kind.Object {
		return nil, false
	}

	src := reflect.ValueOf(ctx.Value)

	switch indirect(src).Kind() { //nolint:exhaustive
	case reflect.Map, reflect.Struct:
	default:
		return nil, false
	}

	dst := rebuild(src, func(src reflect.Value) reflect.Value {
		if src.Kind() == reflect.Map {
			return ctx.cloneMap(src)
		}

		return ctx.cloneStruct(src)
	})

	return dst.Interface(), true
}

// CloneMap clones maps with non-string keys and sets, including weak ones.
// The keys are kept as they are, the values are cloned.
func CloneMap(ctx Context) (any, bool) {
	if !kind.Is(ctx.Value, kind.Map, kind.Set, kind.WeakMap, kind.WeakSet) {
		return nil, false
	}

	return rebuild(reflect.ValueOf(ctx.Value), ctx.cloneMap).Interface(), true
}

// CloneDate clones time.Time values and pointers. The clone represents the same instant in the same location.
func CloneDate(ctx Context) (any, bool) {
	switch date := ctx.Value.(type) {
	case time.Time:
		return date, true
	case *time.Time:
		if date == nil {
			return nil, false
		}

		dst := *date

		return &dst, true
	}

	return nil, false
}

// CloneAny handles every non-nil value by making a full deep copy of it, unexported fields included.
// Nested values are not passed through the predicate chain.
func CloneAny(ctx Context) (any, bool) {
	if ctx.Value == nil {
		return nil, false
	}

	return goclone.Clone(ctx.Value), true
}

func (ctx Context) cloneMap(src reflect.Value) reflect.Value {
	if src.Kind() != reflect.Map || src.IsNil() {
		return src
	}

	dst := reflect.MakeMapWithSize(src.Type(), src.Len())
	elemType := src.Type().Elem()
	iter := src.MapRange()

	for iter.Next() {
		item := reflect.New(elemType).Elem()
		ctx.setClone(item, iter.Value())
		dst.SetMapIndex(iter.Key(), item)
	}

	return dst
}

func (ctx Context) cloneStruct(src reflect.Value) reflect.Value {
	typ := src.Type()

	dst := reflect.New(typ).Elem()
	dst.Set(src)

	for i := range typ.NumField() {
		if !typ.Field(i).IsExported() {
			continue
		}

		ctx.setClone(dst.Field(i), src.Field(i))
	}

	return dst
}

// setClone stores the clone of src into dst. A clone that does not fit dst leaves the source value in place.
func (ctx Context) setClone(dst, src reflect.Value) {
	out := reflect.ValueOf(ctx.Recurse(src.Interface()))

	switch {
	case !out.IsValid():
		dst.SetZero()
	case out.Type().AssignableTo(dst.Type()):
		dst.Set(out)
	default:
		dst.Set(src)
	}
}

// rebuild applies fn to the value behind any pointers and interfaces, and wraps the result in new pointers
// so that the returned value does not share them with the source.
func rebuild(src reflect.Value, fn func(reflect.Value) reflect.Value) reflect.Value {
	switch src.Kind() { //nolint:exhaustive
	case reflect.Pointer:
		if src.IsNil() {
			return src
		}

		dst := reflect.New(src.Type().Elem())
		dst.Elem().Set(rebuild(src.Elem(), fn))

		return dst
	case reflect.Interface:
		if src.IsNil() {
			return src
		}

		dst := reflect.New(src.Type()).Elem()
		dst.Set(rebuild(src.Elem(), fn))

		return dst
	}

	return fn(src)
}

func indirect(val reflect.Value) reflect.Value {
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return val
		}

		val = val.Elem()
	}

	return val
}
