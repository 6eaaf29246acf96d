package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fixturekit"
)

// MinLen fails when the value's length is below min. Length is measured on
// strings, slices, arrays and maps; any other type fails outright.
func MinLen(min int) fixturekit.Rule {
	return func(value any) error {
		n, ok := lengthOf(value)
		if !ok {
			return fmt.Errorf("must have a length, got %T", value)
		}
		if n < min {
			return fmt.Errorf("must have length at least %d", min)
		}
		return nil
	}
}

// MaxLen fails when the value's length exceeds max. Length is measured on
// strings, slices, arrays and maps; any other type fails outright.
func MaxLen(max int) fixturekit.Rule {
	return func(value any) error {
		n, ok := lengthOf(value)
		if !ok {
			return fmt.Errorf("must have a length, got %T", value)
		}
		if n > max {
			return fmt.Errorf("must have length at most %d", max)
		}
		return nil
	}
}

func lengthOf(value any) (int, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}
