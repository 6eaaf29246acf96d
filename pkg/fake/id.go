package fake

import "github.com/google/uuid"

// UUID returns a random version 4 UUID string.
func UUID() string {
	return uuid.New().String()
}
