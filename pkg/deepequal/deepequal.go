// Package deepequal compares arbitrary values structurally.
//
// Arrays and objects are compared recursively, element by element and key by key, while every other kind
// falls back to identity: two distinct *regexp.Regexp with the same pattern are not equal, nor are two
// time.Time values that represent the same instant in different locations.
//
// Equal performs no cycle detection, comparing a value that references itself recurses until the stack is exhausted.
package deepequal

import (
	"math/big"
	"reflect"
	"time"

	"github.com/gruntwork-io/go-utils/pkg/kind"
)

// Equal reports whether a and b are structurally equal. Key order of objects never matters.
//
//	deepequal.Equal([]any{map[string]any{"a": []int{1}}}, []any{map[string]any{"a": []int{1}}}) // true
//	deepequal.Equal([]any{map[string]any{"a": []int{1}}}, []any{map[string]any{"a": []int{2}}}) // false
func Equal(a, b any) bool {
	if kind.Classify(a, kind.WithFullClass()) != kind.Classify(b, kind.WithFullClass()) {
		return false
	}

	switch kind.Kind(kind.Classify(a, kind.Simplified())) { //nolint:exhaustive
	case kind.Null:
		// Untyped nil and typed nil pointers are the same null.
		return true
	case kind.Array:
		return equalArray(indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b)))
	case kind.Object:
		return equalObject(indirect(reflect.ValueOf(a)), indirect(reflect.ValueOf(b)))
	default:
		return identical(a, b)
	}
}

func equalArray(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !Equal(a.Index(i).Interface(), b.Index(i).Interface()) {
			return false
		}
	}

	return true
}

func equalObject(a, b reflect.Value) bool {
	keys := ownKeys(a)

	if len(keys) != len(ownKeys(b)) {
		return false
	}

	for _, key := range keys {
		if !Equal(ownValue(a, key), ownValue(b, key)) {
			return false
		}
	}

	return true
}

// identical compares values that have no structure of their own.
func identical(a, b any) bool {
	a, b = derefLeaf(a), derefLeaf(b)

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	valA, valB := reflect.ValueOf(a), reflect.ValueOf(b)

	if valA.Type() != valB.Type() {
		return false
	}

	if x, ok := a.(big.Int); ok {
		y := b.(big.Int) //nolint:forcetypeassert
		return x.Cmp(&y) == 0
	}

	if valA.Kind() == reflect.Func {
		return valA.Pointer() == valB.Pointer()
	}

	if valA.Comparable() && valB.Comparable() {
		return valA.Equal(valB)
	}

	// Values that Go cannot compare with == have no identity of their own.
	return reflect.DeepEqual(a, b)
}

// derefLeaf follows a non-nil *time.Time or *big.Int so that a date or bigint and a pointer to it compare alike.
func derefLeaf(val any) any {
	switch ptr := val.(type) {
	case *time.Time:
		if ptr != nil {
			return *ptr
		}
	case *big.Int:
		if ptr != nil {
			return *ptr
		}
	}

	return val
}
