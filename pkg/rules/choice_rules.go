package rules

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fixturekit"
)

// OneOf fails unless the value equals one of the allowed values. Containers
// compare structurally, so slices and maps can appear in the allowed set.
func OneOf(allowed ...any) fixturekit.Rule {
	return func(value any) error {
		for _, a := range allowed {
			if reflect.DeepEqual(value, a) {
				return nil
			}
		}
		return fmt.Errorf("must be one of: %v", allowed)
	}
}
