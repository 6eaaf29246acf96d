package fake

import (
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestWord(t *testing.T) {
	for i := 0; i < 100; i++ {
		w := Word()
		if !slices.Contains(words, w) {
			t.Fatalf("Word() = %q, not in the dictionary", w)
		}
	}
}

func TestWords(t *testing.T) {
	ws := Words(5)
	if len(ws) != 5 {
		t.Fatalf("Words(5) returned %d words", len(ws))
	}
	for _, w := range ws {
		if !slices.Contains(words, w) {
			t.Errorf("Words(5) contained %q, not in the dictionary", w)
		}
	}

	if got := Words(0); len(got) != 0 || got == nil {
		t.Errorf("Words(0) = %v, want empty non-nil slice", got)
	}
	if got := Words(-1); len(got) != 0 {
		t.Errorf("Words(-1) = %v, want empty slice", got)
	}
}

func TestSentence(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z][a-z]*( [a-z]+)*\.$`)

	for i := 0; i < 50; i++ {
		s := Sentence(4)
		if !pattern.MatchString(s) {
			t.Fatalf("Sentence(4) = %q, want title-cased words ending in a period", s)
		}
		if got := len(strings.Fields(s)); got != 4 {
			t.Errorf("Sentence(4) has %d words: %q", got, s)
		}
	}

	if got := Sentence(0); got != "" {
		t.Errorf("Sentence(0) = %q, want empty", got)
	}
}

func TestSlug(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)

	for i := 0; i < 50; i++ {
		s := Slug(3)
		if !pattern.MatchString(s) {
			t.Fatalf("Slug(3) = %q, want dash-joined lowercase words", s)
		}
		if got := len(strings.Split(s, "-")); got != 3 {
			t.Errorf("Slug(3) has %d segments: %q", got, s)
		}
	}

	if got := Slug(0); got != "" {
		t.Errorf("Slug(0) = %q, want empty", got)
	}
}
