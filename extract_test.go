package fragsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func keysOfSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestDefaultExtractorSplitsOnNonWordRuns(t *testing.T) {
	got := DefaultExtractor.Extract("one two,three-four")
	assert.ElementsMatch(t, []string{"one", "two", "three", "four"}, keysOfSet(got))

	got = DefaultExtractor.Extract("one$two%three^four")
	assert.ElementsMatch(t, []string{"one", "two", "three", "four"}, keysOfSet(got))
}

func TestDefaultExtractorEmptyInput(t *testing.T) {
	got := DefaultExtractor.Extract("")
	assert.Empty(t, got)
}

func TestDefaultNormalizerLowercases(t *testing.T) {
	assert.Equal(t, "new york", DefaultNormalizer.Normalize("New York"))
}
