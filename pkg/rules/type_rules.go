package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fixturekit"
)

// TypeOf fails unless the value is a T. Concrete types match exactly;
// interface types match any implementation.
func TypeOf[T any]() fixturekit.Rule {
	want := reflect.TypeFor[T]()
	return func(value any) error {
		if _, ok := value.(T); !ok {
			return fmt.Errorf("must have type %s, got %T", want, value)
		}
		return nil
	}
}
