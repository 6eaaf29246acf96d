package fixturekit

// resolveGenerator normalizes a declared field value into the canonical
// generator signature. Recognized function shapes become factories invoked at
// build time; every other value is captured as a constant returned by
// reference on each call. Copying, when enabled, happens later in the build
// pipeline, never here.
//
// Recognized factory shapes:
//
//	Generator
//	func(Object, int, Options) (any, error)
//	func(Object, int, Options) any
//	func(Object) (any, error)
//	func(Object) any
//	func() (any, error)
//	func() any
//	func() string
//	func() int
//	func() int64
//	func() float64
//	func() bool
func resolveGenerator(value any) Generator {
	switch fn := value.(type) {
	case Generator:
		return fn
	case func(Object, int, Options) (any, error):
		return fn
	case func(Object, int, Options) any:
		return func(obj Object, index int, opts Options) (any, error) {
			return fn(obj, index, opts), nil
		}
	case func(Object) (any, error):
		return func(obj Object, _ int, _ Options) (any, error) {
			return fn(obj)
		}
	case func(Object) any:
		return func(obj Object, _ int, _ Options) (any, error) {
			return fn(obj), nil
		}
	case func() (any, error):
		return func(Object, int, Options) (any, error) {
			return fn()
		}
	case func() any:
		return func(Object, int, Options) (any, error) {
			return fn(), nil
		}
	case func() string:
		return func(Object, int, Options) (any, error) {
			return fn(), nil
		}
	case func() int:
		return func(Object, int, Options) (any, error) {
			return fn(), nil
		}
	case func() int64:
		return func(Object, int, Options) (any, error) {
			return fn(), nil
		}
	case func() float64:
		return func(Object, int, Options) (any, error) {
			return fn(), nil
		}
	case func() bool:
		return func(Object, int, Options) (any, error) {
			return fn(), nil
		}
	default:
		return constant(value)
	}
}

// constant wraps value in a generator that returns the same value, by
// reference, on every invocation.
func constant(value any) Generator {
	return func(Object, int, Options) (any, error) {
		return value, nil
	}
}
