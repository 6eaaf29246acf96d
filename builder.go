package fixturekit

import (
	"maps"
	"slices"
)

// fieldDef is one entry of the builder's ordered field registry. Duplicate
// names are all kept and all of their generators run during a build; the
// later entry's assignment wins for the value.
type fieldDef struct {
	name string
	gen  Generator
}

// Builder accumulates field declarations, validators and options, then
// materializes objects through Build. A builder and everything it owns is
// meant for single-goroutine use.
//
// Chain calls record the first error they hit (unknown preset, negative
// repeat, nil rule) and turn the rest of the chain inert; Build and Err
// report that error.
type Builder struct {
	fields     []fieldDef
	validators map[string]Rule
	expectKeys []string
	repeat     int
	registry   *Registry
	ctorLayer  optionLayer
	chainLayer optionLayer
	err        error
}

// New returns an empty builder. Options passed here form the constructor
// layer of the precedence chain; the DeepCopy and SkipValidation mutators and
// options passed to Build override them.
func New(opts ...Option) *Builder {
	return &Builder{
		repeat:    1,
		registry:  DefaultRegistry,
		ctorLayer: applyOptions(opts),
	}
}

// Set declares a field directly. value is either a constant or one of the
// factory shapes recognized by the package (see Generator). Declaring a name
// twice keeps both entries.
func (b *Builder) Set(name string, value any) *Builder {
	return b.addField(fieldDef{name: name, gen: resolveGenerator(value)})
}

// Field begins a typed declaration for name. The field is registered when one
// of the chain's setters is called.
func (b *Builder) Field(name string) *FieldChain {
	return &FieldChain{builder: b, name: name}
}

// Validate attaches rule to name, replacing a rule attached earlier. The rule
// runs only when the resolved options do not skip validation.
func (b *Builder) Validate(name string, rule Rule) *Builder {
	if b.err != nil {
		return b
	}
	if rule == nil {
		b.err = ErrNilRule
		return b
	}
	if b.validators == nil {
		b.validators = make(map[string]Rule)
	}
	b.validators[name] = rule
	return b
}

// ExpectKeys arms the required-key check with the caller's expected key set.
// Keys accumulate across calls and are checked in the order given, on every
// built object, independent of the validation setting. Without an explicit
// key set the check never runs.
func (b *Builder) ExpectKeys(keys ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.expectKeys = append(b.expectKeys, keys...)
	return b
}

// Repeat sets how many objects Build produces. 1, the default, builds a
// single Object; any other non-negative count builds a []Object of that
// length. Calling Repeat again replaces the previous count.
func (b *Builder) Repeat(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = ErrInvalidRepeat
		return b
	}
	b.repeat = n
	return b
}

// Extend merges t into the builder: each entry becomes a field with the same
// constant-or-factory handling as Set, applied in ascending key order.
func (b *Builder) Extend(t Template) *Builder {
	if b.err != nil {
		return b
	}
	for _, name := range slices.Sorted(maps.Keys(t)) {
		b.fields = append(b.fields, fieldDef{name: name, gen: resolveGenerator(t[name])})
	}
	return b
}

// Preset merges the named template from the builder's registry. An unknown
// name records a sticky *ErrPresetNotFound that Err and Build report.
func (b *Builder) Preset(name string) *Builder {
	if b.err != nil {
		return b
	}
	t, ok := b.registry.Lookup(name)
	if !ok {
		b.err = NewErrPresetNotFound(name)
		return b
	}
	return b.Extend(t)
}

// UseRegistry points the builder at r for preset lookups. A nil r restores
// DefaultRegistry.
func (b *Builder) UseRegistry(r *Registry) *Builder {
	if b.err != nil {
		return b
	}
	if r == nil {
		r = DefaultRegistry
	}
	b.registry = r
	return b
}

// DeepCopy sets the builder-level deep-copy behavior, overriding the
// constructor and package defaults. Options passed to Build still win.
func (b *Builder) DeepCopy(enabled bool) *Builder {
	if b.err != nil {
		return b
	}
	b.chainLayer.deepCopy = &enabled
	return b
}

// SkipValidation sets the builder-level validation behavior, overriding the
// constructor and package defaults. Options passed to Build still win.
func (b *Builder) SkipValidation(skip bool) *Builder {
	if b.err != nil {
		return b
	}
	b.chainLayer.skipValidation = &skip
	return b
}

// Err reports the first error a chain call recorded, without building.
func (b *Builder) Err() error {
	return b.err
}

// Clone returns a derived builder with its own copies of the field list,
// validators, expected keys, repeat count and option layers. Generator
// closures are shared, so increment counters keep a single sequence across
// the original and the clone.
func (b *Builder) Clone() *Builder {
	return &Builder{
		fields:     slices.Clone(b.fields),
		validators: maps.Clone(b.validators),
		expectKeys: slices.Clone(b.expectKeys),
		repeat:     b.repeat,
		registry:   b.registry,
		ctorLayer:  b.ctorLayer,
		chainLayer: b.chainLayer,
		err:        b.err,
	}
}

func (b *Builder) addField(f fieldDef) *Builder {
	if b.err != nil {
		return b
	}
	b.fields = append(b.fields, f)
	return b
}
