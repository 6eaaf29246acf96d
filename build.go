package fixturekit

import "fmt"

// Build materializes the declared fields. With the default repeat count of 1
// the result is a single Object built with index -1; any other non-negative
// repeat count yields a []Object with indexes 0 through repeat-1, and
// Repeat(0) yields an empty slice. opts form the per-call layer, the highest
// precedence in the option chain.
//
// A sticky chain error is returned as-is before any generator runs. A
// generator error aborts the build immediately and reaches the caller
// unmodified; generator panics are not recovered. After every object is
// constructed, validators and the required-key check run per the resolved
// options; collected violations come back as ValidationErrors and the build
// returns no result.
func (b *Builder) Build(opts ...Option) (any, error) {
	if b.repeat == 1 {
		obj, err := b.BuildOne(opts...)
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	list, err := b.BuildList(opts...)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// BuildOne materializes exactly one Object no matter the repeat count. The
// object is built with index -1, same as a non-batched Build.
func (b *Builder) BuildOne(opts ...Option) (Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	resolved := b.resolve(opts)
	obj, err := b.createOne(-1, resolved)
	if err != nil {
		return nil, err
	}
	var violations ValidationErrors
	b.checkObject(obj, -1, b.validationOrder(), resolved, &violations)
	if len(violations) > 0 {
		return nil, violations
	}
	return obj, nil
}

// BuildList materializes the whole batch as a slice no matter the repeat
// count: repeat objects built with indexes 0 through repeat-1. Validators run
// only after the full batch is constructed, so counters and other generator
// state advance across all repetitions even when a violation is found.
func (b *Builder) BuildList(opts ...Option) ([]Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	resolved := b.resolve(opts)
	list := make([]Object, 0, b.repeat)
	for i := 0; i < b.repeat; i++ {
		obj, err := b.createOne(i, resolved)
		if err != nil {
			return nil, err
		}
		list = append(list, obj)
	}
	order := b.validationOrder()
	var violations ValidationErrors
	for i, obj := range list {
		b.checkObject(obj, i, order, resolved, &violations)
	}
	if len(violations) > 0 {
		return nil, violations
	}
	return list, nil
}

// MustBuild is Build that panics on error. Useful in test setup where a bad
// fixture should stop the run immediately.
func (b *Builder) MustBuild(opts ...Option) any {
	result, err := b.Build(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to build fixture: %v", err))
	}
	return result
}

// resolve folds the option layers for one build call, lowest precedence
// first.
func (b *Builder) resolve(opts []Option) Options {
	return resolveOptions(b.ctorLayer, b.chainLayer, applyOptions(opts))
}

// createOne assembles a single object. Fields run in registry order against
// the partially built object, so a generator sees every value assigned by
// earlier fields in this same pass, after any deep copy was applied to them.
func (b *Builder) createOne(index int, opts Options) (Object, error) {
	obj := make(Object, len(b.fields))
	for _, f := range b.fields {
		v, err := f.gen(obj, index, opts)
		if err != nil {
			return nil, err
		}
		if opts.DeepCopy {
			v = Clone(v)
		}
		obj[f.name] = v
	}
	return obj, nil
}

// validationOrder lists the field names that have validators attached, each
// once, in first-declaration order. Validators attached to names never
// declared as fields do not run.
func (b *Builder) validationOrder() []string {
	if len(b.validators) == 0 {
		return nil
	}
	order := make([]string, 0, len(b.validators))
	seen := make(map[string]bool, len(b.validators))
	for _, f := range b.fields {
		if seen[f.name] {
			continue
		}
		if _, ok := b.validators[f.name]; !ok {
			continue
		}
		seen[f.name] = true
		order = append(order, f.name)
	}
	return order
}

// checkObject appends the object's violations: validator failures first, in
// first-declaration field order, then missing expected keys in the order the
// caller supplied them. The key check is armed by ExpectKeys alone and
// ignores the validation setting.
func (b *Builder) checkObject(obj Object, index int, order []string, opts Options, violations *ValidationErrors) {
	if !opts.SkipValidation {
		for _, name := range order {
			if err := b.validators[name](obj[name]); err != nil {
				*violations = append(*violations, Violation{Field: name, Index: index, Message: err.Error()})
			}
		}
	}
	for _, key := range b.expectKeys {
		if _, ok := obj[key]; !ok {
			*violations = append(*violations, Violation{Field: key, Index: index, Message: fmt.Sprintf("missing expected key %q", key)})
		}
	}
}
