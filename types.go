package fixturekit

// Object is a single built fixture: a mutable mapping of field names to the
// values their generators produced.
type Object map[string]any

// Template is a reusable set of field declarations. Values follow the same
// rules as Builder.Set: recognized function shapes become factories, anything
// else is treated as a constant. Templates merged into a builder are applied
// in ascending key order, so order-sensitive cross-field references should be
// declared with chained Set calls instead.
type Template map[string]any

// Generator produces the value for one field during a build pass.
//
// obj is the object built so far, already containing the values assigned by
// fields declared earlier in the same pass. index is the zero-based position
// of the object inside a batched build, or -1 when a single object is being
// built. opts carries the options the build call resolved to.
//
// Returning an error aborts the whole build immediately; the error reaches
// the caller unwrapped. Generators may keep private mutable state between
// invocations (see Counter); that state lives as long as the field
// definition, not the build call.
type Generator func(obj Object, index int, opts Options) (any, error)

// Rule validates a single field value after the object has been assembled.
// A nil return means the value is acceptable; a non-nil error contributes its
// message to the aggregated validation failure.
type Rule func(value any) error
