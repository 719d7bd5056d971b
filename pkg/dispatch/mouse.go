package dispatch

import (
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/ports"
)

// SessionProbe reports whether an XR session is running.
// ports.HostRuntime satisfies it.
type SessionProbe interface {
	IsSessionRunning() bool
}

// MousePassthrough forwards mouse moves to the consumer while an XR session runs.
// The first move seen without a running session cancels it for good.
type MousePassthrough struct {
	probe    SessionProbe
	consumer ports.Consumer
	active   bool
	opts     options
}

// NewMousePassthrough creates an active passthrough stream.
func NewMousePassthrough(probe SessionProbe, consumer ports.Consumer, opts ...Option) (*MousePassthrough, error) {
	if consumer == nil {
		return nil, domain.ErrNoConsumer
	}
	if probe == nil {
		return nil, domain.ErrNoHost
	}
	m := &MousePassthrough{
		probe:    probe,
		consumer: consumer,
		active:   true,
		opts:     defaultOptions(),
	}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m, nil
}

// HandleMouseMove processes one mouse-move event.
// Once cancelled, moves pass through untouched and are no longer forwarded.
func (m *MousePassthrough) HandleMouseMove(ev domain.MouseEvent) domain.Disposition {
	if !m.active {
		return domain.DispositionPassThrough
	}

	if !m.probe.IsSessionRunning() {
		m.active = false
		m.opts.logger.Debug("mouse passthrough cancelled: no running XR session")
		if m.opts.hooks.OnMouseCancel != nil {
			m.opts.hooks.OnMouseCancel()
		}
		return domain.DispositionCancelled
	}

	data := domain.EventData{Source: domain.SourceMouseMove, X: ev.X, Y: ev.Y}
	m.consumer.OnEvent(domain.PhaseUpdate, data)
	if m.opts.hooks.OnForward != nil {
		m.opts.hooks.OnForward(domain.PhaseUpdate, data)
	}
	return domain.DispositionPassThrough
}

// Active reports whether mouse moves are still being tracked.
func (m *MousePassthrough) Active() bool {
	return m.active
}
