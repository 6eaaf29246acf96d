package fixturekit

// Counter is the mutable sequence state behind increment fields. It is owned
// by the field definition that captured it and is never reset between builds,
// so batch builds and successive Build calls keep advancing the same
// sequence. Counters follow the builder's concurrency contract and are not
// safe for concurrent use.
type Counter struct {
	next int
	step int
}

// NewCounter returns a counter that yields start on its first Advance and
// moves by step after every yield. step may be zero or negative.
func NewCounter(start, step int) *Counter {
	return &Counter{next: start, step: step}
}

// Advance returns the current value and moves the counter by its step.
func (c *Counter) Advance() int {
	v := c.next
	c.next += c.step
	return v
}

// Peek returns the value the next Advance will yield without moving the
// counter.
func (c *Counter) Peek() int {
	return c.next
}

// Generator adapts the counter to the canonical generator signature so it can
// back a field directly. Two fields built from the same counter share one
// sequence.
func (c *Counter) Generator() Generator {
	return func(Object, int, Options) (any, error) {
		return c.Advance(), nil
	}
}

// Increment returns a generator with a private counter that starts at start
// and moves by step on every invocation. The counter lives as long as the
// field entry it is registered on.
func Increment(start, step int) Generator {
	return NewCounter(start, step).Generator()
}
