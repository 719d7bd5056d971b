package dispatch

import (
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/ports"
)

// handState is the per-action bookkeeping for a bimanual action.
// last holds the most recent value reported by each hand (0 if never seen).
type handState struct {
	last map[domain.Hand]float64
}

// Dispatcher applies the per-action transition rule and forwards normalized events.
// It is not safe for concurrent use: the host must deliver events one at a time.
type Dispatcher struct {
	catalog    *catalog.Catalog
	thresholds catalog.Thresholds
	consumer   ports.Consumer
	states     map[string]*handState
	opts       options
}

// New creates a Dispatcher.
//
// consumer is the one and only receiver of normalized events for the process; it must be
// supplied here, before dispatch starts. New fails with domain.ErrNoConsumer when it is
// nil and with a *domain.ConfigError when a bimanual action has no threshold.
func New(cat *catalog.Catalog, thresholds catalog.Thresholds, consumer ports.Consumer, opts ...Option) (*Dispatcher, error) {
	if consumer == nil {
		return nil, domain.ErrNoConsumer
	}
	if err := thresholds.Check(cat); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		catalog:    cat,
		thresholds: thresholds.With(nil),
		consumer:   consumer,
		states:     make(map[string]*handState),
		opts:       defaultOptions(),
	}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d, nil
}

// HandleAction processes one raw action event.
func (d *Dispatcher) HandleAction(ev domain.ActionEvent) domain.Disposition {
	spec, ok := d.catalog.Lookup(ev.Action)
	if !ok || !spec.Dispatched() || !spec.HasHand(ev.Hand) {
		d.opts.logger.Debug("ignoring action event", "action", ev.Action, "hand", ev.Hand, "kind", ev.Kind)
		if d.opts.hooks.OnIgnore != nil {
			d.opts.hooks.OnIgnore(ev)
		}
		return domain.DispositionIgnored
	}

	data := domain.EventData{
		Source:   domain.SourceXRAction,
		Action:   spec.Name,
		Handler:  d.catalog.HandlerID(spec.Name),
		Hand:     ev.Hand,
		Kind:     ev.Kind,
		Value:    ev.Value,
		Bimanual: spec.Bimanual(),
	}

	switch ev.Kind {
	case domain.EventPress, domain.EventUpdate:
		if spec.Bimanual() {
			d.state(spec.Name).last[ev.Hand] = ev.Value
		}
		d.forward(domain.PhaseUpdate, data)
		return domain.DispositionRunning

	case domain.EventRelease:
		if !spec.Bimanual() {
			d.forward(domain.PhaseComplete, data)
			return domain.DispositionFinished
		}

		st := d.state(spec.Name)
		st.last[ev.Hand] = ev.Value
		other := st.last[ev.Hand.Other()]
		threshold, _ := d.thresholds.For(spec.BindingName)

		if other > threshold {
			// The other hand still holds the action; its own release completes it.
			d.opts.logger.Debug("release deferred",
				"action", spec.Name,
				"hand", ev.Hand,
				"other_value", other,
				"threshold", threshold,
				"phase", d.phaseOf(spec.Name),
			)
			if d.opts.hooks.OnDefer != nil {
				d.opts.hooks.OnDefer(ev, other, threshold)
			}
			return domain.DispositionRunning
		}

		d.forward(domain.PhaseComplete, data)
		return domain.DispositionFinished

	default:
		d.forward(domain.PhaseUpdate, data)
		return domain.DispositionRunning
	}
}

func (d *Dispatcher) state(action string) *handState {
	st, ok := d.states[action]
	if !ok {
		st = &handState{last: make(map[domain.Hand]float64, 2)}
		d.states[action] = st
	}
	return st
}

// phaseOf summarizes how many hands currently hold a bimanual action above its threshold.
func (d *Dispatcher) phaseOf(action string) domain.DispatchPhase {
	st, ok := d.states[action]
	if !ok {
		return domain.PhaseIdle
	}
	spec, _ := d.catalog.Lookup(action)
	threshold, _ := d.thresholds.For(spec.BindingName)

	held := 0
	for _, v := range st.last {
		if v > threshold {
			held++
		}
	}
	switch held {
	case 0:
		return domain.PhaseIdle
	case 1:
		return domain.PhaseActiveOneHand
	default:
		return domain.PhaseActiveBothHands
	}
}

func (d *Dispatcher) forward(phase domain.Phase, data domain.EventData) {
	d.consumer.OnEvent(phase, data)
	if d.opts.hooks.OnForward != nil {
		d.opts.hooks.OnForward(phase, data)
	}
}
