package observability

import (
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for one registry.
type Metrics struct {
	Forwarded       *prometheus.CounterVec
	Deferred        *prometheus.CounterVec
	Ignored         prometheus.Counter
	MouseCancelled  prometheus.Counter
	BindingsCreated *prometheus.CounterVec
	BindingsSkipped *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Forwarded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xrinput_events_forwarded_total",
				Help: "Normalized events delivered to the consumer",
			},
			[]string{"phase", "source"},
		),
		Deferred: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xrinput_releases_deferred_total",
				Help: "Bimanual releases withheld because the other hand still held the action",
			},
			[]string{"action"},
		),
		Ignored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "xrinput_events_ignored_total",
				Help: "Action events for actions this system did not register",
			},
		),
		MouseCancelled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "xrinput_mouse_passthrough_cancelled_total",
				Help: "Mouse passthrough streams cancelled for lack of a running session",
			},
		),
		BindingsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xrinput_bindings_created_total",
				Help: "Physical bindings registered with the host runtime",
			},
			[]string{"profile"},
		),
		BindingsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xrinput_bindings_skipped_total",
				Help: "Physical bindings skipped because their profile is disabled",
			},
			[]string{"profile"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.Forwarded,
			m.Deferred,
			m.Ignored,
			m.MouseCancelled,
			m.BindingsCreated,
			m.BindingsSkipped,
		)
	}
	return m
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnForward: func(phase domain.Phase, data domain.EventData) {
			m.Forwarded.WithLabelValues(string(phase), string(data.Source)).Inc()
		},
		OnDefer: func(ev domain.ActionEvent, _, _ float64) {
			m.Deferred.WithLabelValues(ev.Action).Inc()
		},
		OnIgnore: func(domain.ActionEvent) {
			m.Ignored.Inc()
		},
		OnMouseCancel: func() {
			m.MouseCancelled.Inc()
		},
		OnBindingCreated: func(rec domain.BindingRecord) {
			m.BindingsCreated.WithLabelValues(rec.Profile).Inc()
		},
		OnBindingSkipped: func(rec domain.BindingRecord) {
			m.BindingsSkipped.WithLabelValues(rec.Profile).Inc()
		},
	}
}
