// Package fixturekit builds synthetic data objects for tests from fluent,
// chainable field declarations.
//
// A Builder collects an ordered list of named fields whose values come from
// constants or generator functions, then materializes them into one or more
// Object values:
//  1. Declare fields with Set, typed Field chains, templates or presets
//  2. Optionally attach per-field validation rules and a repeat count
//  3. Call Build (or BuildOne, BuildList, MustBuild)
//
// Generators run in declaration order against the partially built object, so
// later fields can read values assigned by earlier ones. Declaring a name
// twice keeps both entries: both generators run, the later assignment wins.
//
// # Building
//
//	user, err := fixturekit.New().
//		Field("id").Increment(1, 1).
//		Field("name").String().
//		Set("email", func(obj fixturekit.Object) any {
//			return fmt.Sprintf("%v@example.com", obj["name"])
//		}).
//		BuildOne()
//
// Repeat turns the build into a batch:
//
//	result, err := fixturekit.New().
//		Field("id").Increment(1, 1).
//		Repeat(3).
//		Build() // []Object with ids 1, 2, 3
//
// Counters and other generator state live with the field declaration, not
// the build call, so successive builds continue their sequences.
//
// # Copy Semantics
//
// By default every value a generator returns is cloned before assignment:
// slices, arrays and maps are rebuilt recursively, everything else passes
// through untouched. This keeps successive build results from aliasing each
// other. Disable it per builder with DeepCopy(false) or per call with
// WithDeepCopy(false) when sharing references is the point of the test.
//
// # Presets
//
// Templates can be registered process-wide under a name and merged into any
// builder:
//
//	fixturekit.DefinePreset("admin", fixturekit.Template{
//		"role":   "admin",
//		"active": true,
//	})
//
//	admin, err := fixturekit.New().Preset("admin").BuildOne()
//
// Preset definitions silently overwrite earlier ones and live for the whole
// process; tests that need isolation attach their own Registry with
// UseRegistry or call ResetPresets between runs.
//
// # Validation
//
// Validation is opt-in twice over: a field is only checked when a rule is
// attached to it, and rules only run when the skip-validation setting is
// turned off (it is on by default):
//
//	_, err := fixturekit.New().
//		Set("email", "not-an-email").
//		Validate("email", rules.Email()).
//		SkipValidation(false).
//		Build()
//
// Failures across all fields and all batch objects aggregate into a single
// ValidationErrors value, messages joined by newlines in encounter order.
//
// # Options
//
// Deep copy and validation skipping resolve through four precedence layers,
// highest first: options passed to Build, the DeepCopy and SkipValidation
// mutators, options passed to New, and the package defaults. The package
// defaults can be flipped per process with the FIXTUREKIT_DEEP_COPY and
// FIXTUREKIT_SKIP_VALIDATION environment variables.
//
// # Concurrency
//
// Builders and their counters are not safe for concurrent use. Registries
// are; cross-builder coordination stays with the caller.
package fixturekit
