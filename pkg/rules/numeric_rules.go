package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fixturekit"
)

// Min fails when the value is below min. Every numeric kind is accepted and
// compared as float64; non-numbers fail outright.
func Min(min float64) fixturekit.Rule {
	return func(value any) error {
		n, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("must be a number, got %T", value)
		}
		if n < min {
			return fmt.Errorf("must be at least %v", min)
		}
		return nil
	}
}

// Max fails when the value exceeds max. Every numeric kind is accepted and
// compared as float64; non-numbers fail outright.
func Max(max float64) fixturekit.Rule {
	return func(value any) error {
		n, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("must be a number, got %T", value)
		}
		if n > max {
			return fmt.Errorf("must be at most %v", max)
		}
		return nil
	}
}

// Between fails when the value is outside [min, max].
func Between(min, max float64) fixturekit.Rule {
	return func(value any) error {
		n, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("must be a number, got %T", value)
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %v and %v", min, max)
		}
		return nil
	}
}

func asFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
