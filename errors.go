package fixturekit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRepeat is recorded when Repeat is called with a negative count.
	ErrInvalidRepeat = errors.New("repeat count must be non-negative")

	// ErrNilRule is recorded when Validate is called with a nil rule.
	ErrNilRule = errors.New("validation rule cannot be nil")

	// ErrNilGenerator is recorded when Func is called with a nil generator.
	ErrNilGenerator = errors.New("generator cannot be nil")

	// ErrMalformedTemplates is returned when a YAML template document cannot
	// be parsed into preset definitions.
	ErrMalformedTemplates = errors.New("malformed template document")
)

// ErrPresetNotFound indicates that Preset was called with a name the registry
// does not hold.
type ErrPresetNotFound struct {
	Name string
}

func (e *ErrPresetNotFound) Error() string {
	return fmt.Sprintf("preset %q is not defined", e.Name)
}

func NewErrPresetNotFound(name string) *ErrPresetNotFound {
	return &ErrPresetNotFound{Name: name}
}

func IsPresetNotFoundError(err error) bool {
	var e *ErrPresetNotFound
	return errors.As(err, &e)
}

// Violation describes a single failed check from one build call.
type Violation struct {
	Field   string
	Index   int // repetition index of the object, -1 for single builds
	Message string
}

// ValidationErrors aggregates every violation a build call collected, in
// encounter order: field-declaration order within an object, repetition order
// across a batch.
type ValidationErrors []Violation

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	return strings.Join(ve.Messages(), "\n")
}

// Messages returns the raw failure messages in encounter order.
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, len(ve))
	for i, v := range ve {
		msgs[i] = v.Message
	}
	return msgs
}

func (ve ValidationErrors) Has(field string) bool {
	for _, v := range ve {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the failure messages recorded for a single field.
func (ve ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, v := range ve {
		if v.Field == field {
			msgs = append(msgs, v.Message)
		}
	}
	return msgs
}

// ExtractValidationErrors unwraps err into ValidationErrors, or returns nil
// if err does not carry any.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
