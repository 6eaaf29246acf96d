package rules

import (
	"errors"
	"reflect"
	"strings"

	"github.com/dmitrymomot/fixturekit"
)

// NonNil fails on nil values, including typed nil pointers, maps, slices,
// functions and channels hiding inside the interface.
func NonNil() fixturekit.Rule {
	return func(value any) error {
		if isNil(value) {
			return errors.New("must not be nil")
		}
		return nil
	}
}

// NonEmpty fails on nil values, blank strings and containers with no
// elements. Zero numbers pass; they are values, not absence.
func NonEmpty() fixturekit.Rule {
	return func(value any) error {
		if isNil(value) {
			return errors.New("must not be empty")
		}
		if s, ok := value.(string); ok {
			if strings.TrimSpace(s) == "" {
				return errors.New("must not be empty")
			}
			return nil
		}
		if n, ok := lengthOf(value); ok && n == 0 {
			return errors.New("must not be empty")
		}
		return nil
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
