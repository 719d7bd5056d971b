package xrinput

import (
	"context"
	"log/slog"

	"github.com/aretw0/xrinput/internal/logging"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/dispatch"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/ports"
)

// Session is the high-level entry point: a materialized catalog plus its dispatcher.
// Like the dispatcher it wraps, it must be driven from a single event pump.
type Session struct {
	catalog    *catalog.Catalog
	dispatcher *dispatch.Dispatcher
	mouse      *dispatch.MousePassthrough
	result     *catalog.Result
}

type settings struct {
	catalog          *catalog.Catalog
	thresholds       catalog.Thresholds
	disabledProfiles []string
	mouse            bool
	hooks            domain.LifecycleHooks
	logger           *slog.Logger
}

// Option defines a functional option for configuring a Session.
type Option func(*settings)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks for registration and dispatch.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.hooks = hooks
	}
}

// WithThresholds overlays activation thresholds on the defaults.
func WithThresholds(t catalog.Thresholds) Option {
	return func(s *settings) {
		s.thresholds = s.thresholds.With(t)
	}
}

// WithDisabledProfiles sets the interaction profiles to leave unbound.
func WithDisabledProfiles(ids ...string) Option {
	return func(s *settings) {
		s.disabledProfiles = append(s.disabledProfiles, ids...)
	}
}

// WithMouseMovement enables forwarding of mouse moves while the XR session runs.
func WithMouseMovement(enabled bool) Option {
	return func(s *settings) {
		s.mouse = enabled
	}
}

// WithCatalog replaces the built-in action catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *settings) {
		s.catalog = cat
	}
}

// Start registers the catalog with host and returns a session ready for dispatch.
//
// consumer is the single receiver of normalized events. Any error is fatal to session
// start: *domain.ConfigError is returned before the host is touched, and
// *domain.RegistrationError when the host rejects a registration call.
func Start(ctx context.Context, host ports.HostRuntime, consumer ports.Consumer, opts ...Option) (*Session, error) {
	s := settings{
		thresholds: catalog.DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.catalog == nil {
		s.catalog = catalog.Default()
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	if host == nil {
		return nil, domain.ErrNoHost
	}
	if consumer == nil {
		return nil, domain.ErrNoConsumer
	}
	if err := s.thresholds.Check(s.catalog); err != nil {
		return nil, err
	}

	res, err := catalog.Materialize(ctx, host, s.catalog,
		catalog.WithDisabledProfiles(s.disabledProfiles...),
		catalog.WithLogger(s.logger),
		catalog.WithHooks(s.hooks),
	)
	if err != nil {
		return nil, err
	}

	d, err := dispatch.New(s.catalog, s.thresholds, consumer,
		dispatch.WithLogger(s.logger),
		dispatch.WithHooks(s.hooks),
	)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		catalog:    s.catalog,
		dispatcher: d,
		result:     res,
	}

	if s.mouse {
		sess.mouse, err = dispatch.NewMousePassthrough(host, consumer,
			dispatch.WithLogger(s.logger),
			dispatch.WithHooks(s.hooks),
		)
		if err != nil {
			return nil, err
		}
	}

	return sess, nil
}

// HandleAction dispatches one raw action event.
func (s *Session) HandleAction(ev domain.ActionEvent) domain.Disposition {
	return s.dispatcher.HandleAction(ev)
}

// HandleMouseMove dispatches one mouse move. Without mouse tracking it passes through.
func (s *Session) HandleMouseMove(ev domain.MouseEvent) domain.Disposition {
	if s.mouse == nil {
		return domain.DispositionPassThrough
	}
	return s.mouse.HandleMouseMove(ev)
}

// MouseTracking reports whether mouse moves are currently forwarded.
func (s *Session) MouseTracking() bool {
	return s.mouse != nil && s.mouse.Active()
}

// Catalog returns the action catalog in use.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Registration returns what was registered with the host at start.
func (s *Session) Registration() *catalog.Result {
	return s.result
}
