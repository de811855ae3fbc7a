package fragsearch

import "log/slog"

const defaultMinKeywordLength = 2

type options struct {
	extractor        Extractor
	normalizer       Normalizer
	scorer           Scorer
	minKeywordLength int
	internShards     int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures an Index at construction time.
type Option func(*options)

// WithExtractor configures the Extractor used to split raw keyword and
// search-query strings into candidate keywords. Passing nil restores
// DefaultExtractor.
func WithExtractor(e Extractor) Option {
	return func(o *options) {
		if e == nil {
			e = DefaultExtractor
		}
		o.extractor = e
	}
}

// WithNormalizer configures the Normalizer applied to every extracted
// keyword. Passing nil restores DefaultNormalizer.
func WithNormalizer(n Normalizer) Option {
	return func(o *options) {
		if n == nil {
			n = DefaultNormalizer
		}
		o.normalizer = n
	}
}

// WithScorer configures the Scorer used to rank matches. Passing nil
// restores RatioScorer.
func WithScorer(s Scorer) Option {
	return func(o *options) {
		if s == nil {
			s = RatioScorer
		}
		o.scorer = s
	}
}

// WithMinKeywordLength sets the minimum length a normalized keyword must
// have to be kept. Keywords shorter than this are dropped when an item is
// registered; search-query keywords are not filtered by length. Values
// below 1 are clamped to 1.
func WithMinKeywordLength(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.minKeywordLength = n
	}
}

// WithInternShards configures the shard count of the internal fragment
// string interner. 0 selects a sensible default.
func WithInternShards(n int) Option {
	return func(o *options) {
		o.internShards = n
	}
}

// WithLogger configures structured logging for Index operations. Pass nil
// to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel is a convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring Index
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		extractor:        DefaultExtractor,
		normalizer:       DefaultNormalizer,
		scorer:           RatioScorer,
		minKeywordLength: defaultMinKeywordLength,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
