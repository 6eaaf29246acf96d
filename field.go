package fixturekit

import "github.com/dmitrymomot/fixturekit/pkg/fake"

const (
	defaultStringLen = 10
	defaultIntBound  = 1000
)

// FieldChain is the typed declaration sub-API returned by Builder.Field.
// Exactly one setter should be called on it; the setter registers the field
// and hands the builder back.
type FieldChain struct {
	builder *Builder
	name    string
}

// String registers a string field. Without an argument every invocation
// produces a fresh random alphanumeric string; an explicit value makes the
// field constant.
func (f *FieldChain) String(value ...string) *Builder {
	if len(value) > 0 {
		return f.builder.addField(fieldDef{name: f.name, gen: constant(value[0])})
	}
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return fake.Alphanumeric(defaultStringLen), nil
	}})
}

// Int registers an integer field. Without an argument every invocation
// produces a fresh random integer in [0, 1000); an explicit value makes the
// field constant.
func (f *FieldChain) Int(value ...int) *Builder {
	if len(value) > 0 {
		return f.builder.addField(fieldDef{name: f.name, gen: constant(value[0])})
	}
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return fake.Intn(defaultIntBound), nil
	}})
}

// Float registers a float field. Without an argument every invocation
// produces a fresh random float in [0, 1); an explicit value makes the field
// constant.
func (f *FieldChain) Float(value ...float64) *Builder {
	if len(value) > 0 {
		return f.builder.addField(fieldDef{name: f.name, gen: constant(value[0])})
	}
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return fake.Float64(), nil
	}})
}

// Bool registers a boolean field. Without an argument every invocation
// produces a fresh random boolean; an explicit value makes the field
// constant.
func (f *FieldChain) Bool(value ...bool) *Builder {
	if len(value) > 0 {
		return f.builder.addField(fieldDef{name: f.name, gen: constant(value[0])})
	}
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return fake.Bool(), nil
	}})
}

// Array registers a slice field. Without arguments every invocation produces
// a fresh empty slice; with arguments the field is a constant slice of the
// given elements, shared by reference until the deep-copy stage clones it.
func (f *FieldChain) Array(elems ...any) *Builder {
	if len(elems) > 0 {
		return f.builder.addField(fieldDef{name: f.name, gen: constant(elems)})
	}
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return []any{}, nil
	}})
}

// Object registers a nested object field. Without an argument every
// invocation produces a fresh empty Object; an explicit map makes the field
// constant, shared by reference until the deep-copy stage clones it.
func (f *FieldChain) Object(value ...map[string]any) *Builder {
	if len(value) > 0 {
		return f.builder.addField(fieldDef{name: f.name, gen: constant(Object(value[0]))})
	}
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return Object{}, nil
	}})
}

// Increment registers a counter-backed field starting at start and moving by
// step on every invocation. The counter persists across Build calls, so
// batches continue the sequence instead of restarting it.
func (f *FieldChain) Increment(start, step int) *Builder {
	return f.builder.addField(fieldDef{name: f.name, gen: Increment(start, step)})
}

// UUID registers a field producing a fresh random UUID string per invocation.
func (f *FieldChain) UUID() *Builder {
	return f.builder.addField(fieldDef{name: f.name, gen: func(Object, int, Options) (any, error) {
		return fake.UUID(), nil
	}})
}

// Func registers a field backed by g directly. A nil generator records a
// sticky ErrNilGenerator on the builder.
func (f *FieldChain) Func(g Generator) *Builder {
	if f.builder.err != nil {
		return f.builder
	}
	if g == nil {
		f.builder.err = ErrNilGenerator
		return f.builder
	}
	return f.builder.addField(fieldDef{name: f.name, gen: g})
}
