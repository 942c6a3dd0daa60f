package rosterdb

// Options contains configuration options for a Store.
type Options struct {
	// Capacity pre-sizes the record map. Zero means no pre-sizing.
	Capacity int

	// Logger receives structured operation logs. Nil disables logging.
	Logger *Logger

	// MetricsCollector receives per-operation callbacks.
	// Nil disables collection.
	MetricsCollector MetricsCollector
}

// DefaultOptions contains the default configuration options for a Store.
var DefaultOptions = Options{
	Capacity: 0,
}

// WithCapacity pre-sizes the store for the expected record count.
func WithCapacity(n int) func(*Options) {
	return func(o *Options) {
		o.Capacity = n
	}
}

// WithLogger configures structured logging for store operations.
func WithLogger(l *Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetricsCollector configures an operational metrics collector.
func WithMetricsCollector(mc MetricsCollector) func(*Options) {
	return func(o *Options) {
		o.MetricsCollector = mc
	}
}
