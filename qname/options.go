package qname

import "log/slog"

// config holds the options threaded through Parse.
type config struct {
	logger *slog.Logger
}

// Option configures an optional behavior of Parse. The zero configuration
// (no options) is silent: no package in this module creates or holds a
// logger of its own.
type Option func(*config)

// WithLogger opts a Parse call into debug-level tracing at each point a
// parse is rejected. A nil logger (the default) disables tracing entirely.
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
