package fragsearch

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samePointer(a, b interface{}) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestApplyOptionsDefaults(t *testing.T) {
	o := applyOptions(nil)
	assert.Equal(t, defaultMinKeywordLength, o.minKeywordLength)
	assert.True(t, samePointer(DefaultExtractor, o.extractor))
	assert.True(t, samePointer(DefaultNormalizer, o.normalizer))
}

func TestWithMinKeywordLengthClampsBelowOne(t *testing.T) {
	o := applyOptions([]Option{WithMinKeywordLength(0)})
	assert.Equal(t, 1, o.minKeywordLength)
}

func TestWithExtractorNilRestoresDefault(t *testing.T) {
	o := applyOptions([]Option{WithExtractor(nil)})
	assert.True(t, samePointer(DefaultExtractor, o.extractor))
}

func TestWithScorerNilRestoresDefault(t *testing.T) {
	o := applyOptions([]Option{WithScorer(nil)})
	assert.True(t, samePointer(RatioScorer, o.scorer))
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := applyOptions([]Option{
		WithMinKeywordLength(5),
		WithMinKeywordLength(3),
	})
	assert.Equal(t, 3, o.minKeywordLength)
}
