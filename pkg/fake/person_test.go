package fake

import (
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestFirstName(t *testing.T) {
	for i := 0; i < 50; i++ {
		if name := FirstName(); !slices.Contains(firstNames, name) {
			t.Fatalf("FirstName() = %q, not in the list", name)
		}
	}
}

func TestLastName(t *testing.T) {
	for i := 0; i < 50; i++ {
		if name := LastName(); !slices.Contains(lastNames, name) {
			t.Fatalf("LastName() = %q, not in the list", name)
		}
	}
}

func TestFullName(t *testing.T) {
	for i := 0; i < 50; i++ {
		name := FullName()
		first, last, ok := strings.Cut(name, " ")
		if !ok {
			t.Fatalf("FullName() = %q, want two space-separated parts", name)
		}
		if !slices.Contains(firstNames, first) {
			t.Errorf("FullName() first part %q not in the list", first)
		}
		if !slices.Contains(lastNames, last) {
			t.Errorf("FullName() last part %q not in the list", last)
		}
	}
}

func TestUsername(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+[0-9]{3}$`)
	for i := 0; i < 50; i++ {
		if u := Username(); !pattern.MatchString(u) {
			t.Fatalf("Username() = %q, want lowercase name plus three digits", u)
		}
	}
}
