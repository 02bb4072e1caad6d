package idtracker

import "log/slog"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	orderCheck       bool
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		orderCheck:       true,
	}
}

// Option configures a Tracker.
type Option func(*options)

// WithLogger configures structured logging for block lifecycle events and
// order violations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := idtracker.NewJSONLogger(slog.LevelDebug)
//	t := idtracker.New(idtracker.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &idtracker.BasicMetricsCollector{}
//	t := idtracker.New(idtracker.WithMetricsCollector(metrics))
//	// ... use t ...
//	stats := metrics.GetStats()
//	fmt.Printf("Marks: %d, Pops: %d\n", stats.MarkCount, stats.PopCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithOrderCheck enables or disables the ascending-order check on pops.
//
// When enabled (the default) a pop that does not advance past the previous
// pop panics with *OrderViolationError. When disabled the violation is
// logged at error level and the pop result is returned unchanged.
//
// A Mark always resets the check, so interleaving marks and pops across
// passes never trips it.
func WithOrderCheck(enabled bool) Option {
	return func(o *options) {
		o.orderCheck = enabled
	}
}
