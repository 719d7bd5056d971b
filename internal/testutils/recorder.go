package testutils

import (
	"sync"

	"github.com/aretw0/xrinput/pkg/domain"
)

// Emitted is one event delivered to a Recorder.
type Emitted struct {
	Phase domain.Phase
	Data  domain.EventData
}

// Recorder is a ports.Consumer that keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	Events []Emitted
}

// OnEvent implements ports.Consumer.
func (r *Recorder) OnEvent(phase domain.Phase, data domain.EventData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Emitted{Phase: phase, Data: data})
}

// Phases returns the phase of every recorded event, in order.
func (r *Recorder) Phases() []domain.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Phase, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Phase
	}
	return out
}

// Completes counts recorded complete events.
func (r *Recorder) Completes() int {
	n := 0
	for _, p := range r.Phases() {
		if p == domain.PhaseComplete {
			n++
		}
	}
	return n
}
