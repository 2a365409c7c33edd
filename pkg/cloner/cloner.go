package cloner

// Context is handed to every predicate. It carries the value to clone, the full predicate chain,
// and the cloner to call for nested values so that they get the same treatment.
type Context struct {
	Value      any
	Predicates []Predicate
	Cloner     Func
}

// Func clones the value of the given context.
type Func func(ctx Context) any

// Predicate returns the clone and true if it handled the value, or nil and false to let the next predicate try.
type Predicate func(ctx Context) (any, bool)

// Recurse clones a nested value with the same predicate chain and cloner.
func (ctx Context) Recurse(value any) any {
	return ctx.Cloner(Context{
		Value:      value,
		Predicates: ctx.Predicates,
		Cloner:     ctx.Cloner,
	})
}

// Option represents an option to customize deep copied results.
type Option func(*Config)

// Config holds the options of a single clone call.
type Config struct {
	predicates []Predicate
	override   bool
}

// WithPredicates returns an `Option` that adds predicates to try, in order, before the built-in ones.
func WithPredicates(predicates ...Predicate) Option {
	return func(conf *Config) {
		conf.predicates = append(conf.predicates, predicates...)
	}
}

// WithOverride returns an `Option` that drops the built-in array and object predicates,
// leaving only the ones given with WithPredicates.
func WithOverride() Option {
	return func(conf *Config) {
		conf.override = true
	}
}
