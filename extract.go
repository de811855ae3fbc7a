package fragsearch

import (
	"regexp"
	"strings"
)

// Extractor converts a raw, possibly free-form input string (keyword list
// or user search query) into a set of candidate keywords.
type Extractor interface {
	Extract(input string) map[string]struct{}
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(input string) map[string]struct{}

// Extract implements Extractor.
func (f ExtractorFunc) Extract(input string) map[string]struct{} {
	return f(input)
}

var nonWord = regexp.MustCompile(`[^\w]+`)

// DefaultExtractor replaces runs of non-word characters with whitespace and
// splits on whitespace boundaries, so both "one two,three-four" and
// "one$two%three^four" extract to {one, two, three, four}.
var DefaultExtractor Extractor = ExtractorFunc(func(input string) map[string]struct{} {
	cleaned := nonWord.ReplaceAllString(input, " ")
	fields := strings.Fields(cleaned)

	out := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		out[f] = struct{}{}
	}
	return out
})

// Normalizer maps a single extracted keyword to its canonical internal
// representation. Returning an empty string causes the keyword to be
// dropped.
type Normalizer interface {
	Normalize(keyword string) string
}

// NormalizerFunc adapts a plain function to the Normalizer interface.
type NormalizerFunc func(keyword string) string

// Normalize implements Normalizer.
func (f NormalizerFunc) Normalize(keyword string) string {
	return f(keyword)
}

// DefaultNormalizer lowercases the keyword. This means, by default, search
// results are case-insensitive but otherwise exact-character matches.
var DefaultNormalizer Normalizer = NormalizerFunc(strings.ToLower)
