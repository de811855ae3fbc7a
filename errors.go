package fragsearch

import "errors"

// ErrInvalidMinKeywordLength is returned by config.Load when the loaded
// configuration's index.minKeywordLength is below 1.
var ErrInvalidMinKeywordLength = errors.New("fragsearch: minimum keyword length must be at least 1")
