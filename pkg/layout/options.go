package layout

import (
	"github.com/charmbracelet/log"

	"github.com/sjakobi/doclayout/pkg/observability"
)

// Option configures a single render pass.
type Option func(*config)

type config struct {
	logger *log.Logger
	hooks  observability.RenderHooks
	spanID string
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hooks == nil {
		cfg.hooks = observability.Render()
	}
	cfg.spanID = observability.NewSpanID()
	return cfg
}

// WithLogger enables debug-level tracing of the render pass through l.
// Tracing never changes the rendered output.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithHooks routes this render's observability events to h instead of the
// globally registered hooks.
func WithHooks(h observability.RenderHooks) Option {
	return func(c *config) {
		c.hooks = h
	}
}

func (c *config) debugf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
