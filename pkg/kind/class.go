package kind

import (
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gruntwork-io/go-utils/pkg/symbol"
)

const (
	nullClass      = "Null"
	undefinedClass = "Undefined"

	generatorFunction = "generatorfunction"

	weakPkgPath = "weak"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	regexpType  = reflect.TypeOf(regexp.Regexp{})
	bigIntType  = reflect.TypeOf(big.Int{})
	symbolType  = reflect.TypeOf(symbol.Symbol{})
	absentType  = reflect.TypeOf(Absent)
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	emptyStruct = reflect.TypeOf(struct{}{})
)

// nativeClass returns the class name used by the verbose form, and whether the value is object-like,
// i.e. whether the verbose form applies to it at all.
func nativeClass(value any) (string, bool) {
	if value == nil {
		return nullClass, true
	}

	return classOf(reflect.ValueOf(value))
}

func classOf(val reflect.Value) (string, bool) {
	typ := val.Type()

	switch typ {
	case absentType:
		return undefinedClass, false
	case timeType:
		return "Date", true
	case regexpType:
		return "RegExp", true
	case bigIntType:
		return "BigInt", false
	case symbolType:
		return "Symbol", false
	}

	if typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Interface {
		if val.IsNil() {
			return nullClass, true
		}

		// Errors with pointer receivers are classified before the pointer is followed.
		if typ.Implements(errorType) && !isKnownType(typ.Elem()) {
			return "Error", true
		}

		return classOf(val.Elem())
	}

	if typ.Implements(errorType) {
		return "Error", true
	}

	switch typ.Kind() {
	case reflect.Bool:
		return "Boolean", false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "Number", false
	case reflect.String:
		return "String", false
	case reflect.Func:
		if IsGeneratorFunc(typ) {
			return "GeneratorFunction", false
		}

		return "Function", false
	case reflect.Slice, reflect.Array:
		return "Array", true
	case reflect.Map:
		return mapClass(typ), true
	case reflect.Struct, reflect.Chan, reflect.UnsafePointer:
		return "Object", true
	case reflect.Invalid, reflect.Pointer, reflect.Interface:
	}

	return nullClass, true
}

func isKnownType(typ reflect.Type) bool {
	switch typ {
	case timeType, regexpType, bigIntType, symbolType, absentType:
		return true
	}

	return false
}

func mapClass(typ reflect.Type) string {
	keyType := typ.Key()
	isSet := typ.Elem() == emptyStruct

	if keyType.PkgPath() == weakPkgPath && strings.HasPrefix(keyType.Name(), "Pointer[") {
		if isSet {
			return "WeakSet"
		}

		return "WeakMap"
	}

	if isSet {
		return "Set"
	}

	if keyType.Kind() == reflect.String {
		return "Object"
	}

	return "Map"
}

// IsGeneratorFunc reports whether the function type has the shape of an `iter.Seq` or `iter.Seq2`:
// a single yield callback returning bool, and no results.
func IsGeneratorFunc(typ reflect.Type) bool {
	if typ.Kind() != reflect.Func || typ.NumIn() != 1 || typ.NumOut() != 0 {
		return false
	}

	yield := typ.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.NumIn() > 2 {
		return false
	}

	return yield.Out(0).Kind() == reflect.Bool
}
