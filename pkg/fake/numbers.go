package fake

// Intn returns a random int in [0, max). max <= 0 returns 0.
func Intn(max int) int {
	if max <= 0 {
		return 0
	}
	return intn(max)
}

// IntRange returns a random int in [min, max). Swapped bounds are reordered;
// an empty range returns min.
func IntRange(min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + intn(max-min)
}

// Float64 returns a random float in [0, 1).
func Float64() float64 {
	return randFloat64()
}

// Bool returns true or false with equal probability.
func Bool() bool {
	return intn(2) == 1
}

// Pick returns one of the given values at random. Called with none it returns
// the zero value instead of failing, so fixture definitions stay total.
func Pick[T any](values ...T) T {
	if len(values) == 0 {
		var zero T
		return zero
	}
	return values[intn(len(values))]
}
