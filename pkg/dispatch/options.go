package dispatch

import (
	"log/slog"

	"github.com/aretw0/xrinput/internal/logging"
	"github.com/aretw0/xrinput/pkg/domain"
)

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

func defaultOptions() options {
	return options{logger: logging.NewNop()}
}

// Option configures a Dispatcher or a MousePassthrough.
type Option func(*options)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}
