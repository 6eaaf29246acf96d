// Package rules provides prebuilt validation rules for fixture fields.
//
// Every constructor returns a fixturekit.Rule closed over its parameters, so
// rules attach directly to a builder:
//
//	b := fixturekit.New().
//		Set("email", "ada@example.com").
//		Set("age", 34).
//		Validate("email", rules.Email()).
//		Validate("age", rules.Between(18, 120)).
//		SkipValidation(false)
//
// Rules receive the field's final value as an untyped interface and check the
// dynamic type themselves: a rule that cannot interpret the value fails with
// a message naming the type it got, which surfaces wiring mistakes the same
// way as ordinary violations.
package rules
