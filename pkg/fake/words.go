package fake

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var words = []string{
	"amber", "anchor", "apple", "arrow", "autumn", "basket", "beacon", "bell",
	"birch", "blossom", "breeze", "bridge", "brook", "candle", "canyon", "cedar",
	"circle", "cloud", "clover", "coast", "compass", "coral", "corner", "cradle",
	"craft", "creek", "crystal", "dawn", "delta", "drift", "ember", "fable",
	"feather", "fern", "field", "flame", "flint", "forest", "fountain", "garden",
	"garnet", "glacier", "grove", "harbor", "harvest", "hazel", "hollow", "horizon",
	"island", "ivory", "jasper", "junction", "juniper", "lagoon", "lantern", "ledge",
	"linen", "lunar", "maple", "marble", "meadow", "mesa", "mirror", "mosaic",
	"moss", "mountain", "north", "oasis", "ocean", "orchard", "pebble", "pine",
	"prairie", "prism", "quarry", "quartz", "raven", "reef", "ridge", "river",
	"saddle", "sails", "shadow", "shelter", "signal", "silver", "sketch", "slate",
	"spring", "stone", "summit", "thicket", "timber", "trail", "tundra", "valley",
	"velvet", "violet", "walnut", "willow", "winter", "wonder", "yarrow", "zephyr",
}

// Word returns one random lowercase word from the built-in dictionary.
func Word() string {
	return pick(words)
}

// Words returns n random words. n <= 0 yields an empty slice.
func Words(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = pick(words)
	}
	return out
}

// Sentence returns n random words as a sentence: leading word title-cased,
// trailing period. n <= 0 yields an empty string.
func Sentence(n int) string {
	if n <= 0 {
		return ""
	}
	ws := Words(n)
	ws[0] = cases.Title(language.English).String(ws[0])
	return strings.Join(ws, " ") + "."
}

// Slug returns n random words joined by dashes, usable as a URL path segment.
func Slug(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Join(Words(n), "-")
}
