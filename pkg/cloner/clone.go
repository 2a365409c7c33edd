// Package cloner deep clones values through an ordered chain of predicates.
//
// Each predicate either handles the value it is given and returns the clone, or declines. The first predicate
// that handles a value wins. A value that no predicate handles is returned as is, which means that by default
// only arrays and objects are copied, every other kind (primitives, dates, functions, ...) is passed through.
//
//	src := map[string]any{"a": []any{map[string]any{"b": 1}}}
//	dst := cloner.Clone(src)
//	dst["a"] = 2 // src is still {"a": [{"b": 1}]}
//
// There is no cycle detection: cloning a value that references itself recurses until the stack is exhausted.
package cloner

import "slices"

// Clone returns a deep cloned instance of the given `src` value. If the predicate chain produces a value
// that is not assignable to T, the source is returned unchanged.
func Clone[T any](src T, opts ...Option) T { //nolint:ireturn
	out := CloneValue(src, opts...)
	if out == nil {
		var zero T
		return zero
	}

	if dst, ok := out.(T); ok {
		return dst
	}

	return src
}

// CloneValue is the untyped form of Clone.
func CloneValue(src any, opts ...Option) any {
	conf := &Config{}
	for _, opt := range opts {
		opt(conf)
	}

	predicates := slices.Clone(conf.predicates)

	if !conf.override {
		predicates = append(predicates, CloneArray, CloneObject)
	}

	return clone(Context{
		Value:      src,
		Predicates: predicates,
		Cloner:     clone,
	})
}

func clone(ctx Context) any {
	for _, predicate := range ctx.Predicates {
		if dst, ok := predicate(ctx); ok {
			return dst
		}
	}

	return ctx.Value
}
