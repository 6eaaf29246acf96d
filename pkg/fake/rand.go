package fake

import (
	"math/rand"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed reseeds the package source so a test run can reproduce its values.
func Seed(seed int64) {
	mu.Lock()
	rnd = rand.New(rand.NewSource(seed))
	mu.Unlock()
}

// intn returns a random int in [0, n) under the package lock. Callers must
// guarantee n > 0.
func intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Intn(n)
}

func randFloat64() float64 {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Float64()
}

func fromCharset(charset string, n int) string {
	if n <= 0 {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = charset[rnd.Intn(len(charset))]
	}
	return string(b)
}

// pick returns a random element of values. Callers must guarantee the slice
// is not empty.
func pick(values []string) string {
	return values[intn(len(values))]
}
