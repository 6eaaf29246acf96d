package rules

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/fixturekit"
)

// Match fails unless the value is a string matching pattern. The pattern is
// compiled once at construction and panics if invalid, mirroring
// regexp.MustCompile.
func Match(pattern string) fixturekit.Rule {
	re := regexp.MustCompile(pattern)
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string, got %T", value)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match %q", pattern)
		}
		return nil
	}
}

// Email fails unless the value is an email address usable on the web: RFC
// 5322 parseable with a non-empty local part and a dotted domain.
func Email() fixturekit.Rule {
	return func(value any) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("must be a string, got %T", value)
		}
		if !isEmail(s) {
			return errors.New("must be a valid email address")
		}
		return nil
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
