// Package kind determines the structural category of an arbitrary Go value.
//
// Every value maps to exactly one Kind in each classification mode:
//
//	kind.Classify([]int{})                                // "array"
//	kind.Classify(map[string]struct{}{})                  // "set"
//	kind.Classify(nil)                                    // "null"
//	kind.Classify(time.Now(), kind.WithFullClass())       // "[object Date]"
//	kind.Classify(map[int]string{}, kind.Simplified())    // "object"
package kind

import "strings"

// Kind is the short tag describing a value's structural category.
type Kind string

const (
	Undefined Kind = "undefined"
	Null      Kind = "null"
	Array     Kind = "array"
	BigInt    Kind = "bigint"
	Date      Kind = "date"
	Error     Kind = "error"
	Function  Kind = "function"
	Generator Kind = "generator"
	RegExp    Kind = "regexp"
	Symbol    Kind = "symbol"
	Object    Kind = "object"
	Map       Kind = "map"
	WeakMap   Kind = "weakmap"
	Set       Kind = "set"
	WeakSet   Kind = "weakset"

	// Primitive tags.
	String  Kind = "string"
	Number  Kind = "number"
	Boolean Kind = "boolean"
)

// String implements fmt.Stringer.
func (kind Kind) String() string {
	return string(kind)
}

// Option configures a single classification call.
type Option func(*Options)

// Options holds the classification mode flags.
type Options struct {
	// ShowFullClass returns object-like kinds in the verbose "[object <Class>]" form.
	ShowFullClass bool
	// Simplify collapses every container kind that is not in the special list to "object".
	Simplify bool
}

// WithFullClass returns an `Option` that turns on the verbose class form.
func WithFullClass() Option {
	return func(opts *Options) {
		opts.ShowFullClass = true
	}
}

// Simplified returns an `Option` that turns on the simplified mode.
// It is ignored when WithFullClass is also given.
func Simplified() Option {
	return func(opts *Options) {
		opts.Simplify = true
	}
}

// simpleKinds are the tags that survive the simplified mode as they are.
var simpleKinds = map[string]struct{}{
	string(Array):     {},
	string(BigInt):    {},
	string(Date):      {},
	string(Error):     {},
	string(Function):  {},
	string(Generator): {},
	string(RegExp):    {},
	string(Symbol):    {},
}

// Classify returns the kind tag of the given value. Without options the result is always one of the Kind constants.
func Classify(value any, opts ...Option) string {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	class, objectLike := nativeClass(value)

	if options.ShowFullClass && objectLike {
		return "[object " + class + "]"
	}

	if class == nullClass {
		return string(Null)
	}

	name := strings.ToLower(class)

	if options.Simplify {
		if name == generatorFunction {
			return string(Function)
		}

		if _, ok := simpleKinds[name]; ok {
			return name
		}

		if objectLike {
			return string(Object)
		}

		return name
	}

	if name == generatorFunction {
		return string(Generator)
	}

	return name
}

// Of returns the default-mode Kind of the given value.
func Of(value any) Kind {
	return Kind(Classify(value))
}

// Is reports whether the value is of one of the given kinds.
func Is(value any, kinds ...Kind) bool {
	actual := Of(value)

	for _, kind := range kinds {
		if actual == kind {
			return true
		}
	}

	return false
}
