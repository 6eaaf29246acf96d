// Package fake generates random primitive values for test fixtures: bounded
// numbers, charset strings, dictionary words, person and internet identities,
// UUIDs and cheap password hashes.
//
// All helpers draw from one package-level seeded source guarded by a mutex,
// so they are safe to call from parallel tests. Seed replaces the source for
// runs that need reproducible values:
//
//	fake.Seed(42)
//	name := fake.FullName()   // same name on every run
//	email := fake.Email()
//
// Helpers never fail: out-of-range arguments fall back to empty or zero
// values instead of returning errors, which keeps fixture definitions total.
package fake
