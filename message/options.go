package message

import "log/slog"

// config holds the options threaded through New, Unpack, and Valid.
type config struct {
	logger *slog.Logger
}

// Option configures optional tracing behavior. The zero configuration (no
// options) is silent: no function in this package creates or holds a
// logger of its own.
type Option func(*config)

// WithLogger opts a call into debug-level tracing at each point a message
// is rejected. A nil logger (the default) disables tracing entirely.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) debugf(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, args...)
}
