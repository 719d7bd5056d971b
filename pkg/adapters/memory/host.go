package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/xrinput/pkg/domain"
)

// Call is one registration request received by the Host, in arrival order.
type Call struct {
	Method string
	Set    string
	Name   string
	Hand   domain.Hand
	Detail string
}

type actionSet struct {
	actions  map[string]domain.ActionSpec
	bindings map[domain.BindingRecord]bool
	grip     string
	aim      string
	active   bool
}

// Host implements ports.HostRuntime and ports.ActionSetInspector in memory.
// It records every call so tests and dry runs can inspect what a real runtime would receive.
// Safe for concurrent use.
type Host struct {
	mu      sync.RWMutex
	sets    map[string]*actionSet
	calls   []Call
	running bool
	fail    map[string]error

	inspect bool
}

// Option configures a Host.
type Option func(*Host)

// WithRunning sets the initial session state reported by IsSessionRunning.
func WithRunning(running bool) Option {
	return func(h *Host) {
		h.running = running
	}
}

// WithoutInspection hides HasActionSet so callers see a host that can only create.
// The method still exists; it always reports false.
func WithoutInspection() Option {
	return func(h *Host) {
		h.inspect = false
	}
}

// NewHost creates an empty host with a running session.
func NewHost(opts ...Option) *Host {
	h := &Host{
		sets:    make(map[string]*actionSet),
		fail:    make(map[string]error),
		running: true,
		inspect: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FailOn makes the next calls of method for name return err.
// name is the action set, action, "action@profile" for bindings, or "" for any.
func (h *Host) FailOn(method, name string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fail[method+"|"+name] = err
}

func (h *Host) injected(method, name string) error {
	if err, ok := h.fail[method+"|"+name]; ok {
		return err
	}
	return h.fail[method+"|"]
}

// SetRunning toggles the session state.
func (h *Host) SetRunning(running bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.running = running
}

// IsSessionRunning reports the session state.
func (h *Host) IsSessionRunning() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.running
}

// HasActionSet reports whether name has been created.
func (h *Host) HasActionSet(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if !h.inspect {
		return false
	}
	_, ok := h.sets[name]
	return ok
}

// CreateActionSet registers a new set.
func (h *Host) CreateActionSet(ctx context.Context, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Method: "CreateActionSet", Set: name, Name: name})

	if err := h.injected("CreateActionSet", name); err != nil {
		return err
	}
	if _, ok := h.sets[name]; ok {
		return fmt.Errorf("%s: %w", name, domain.ErrActionSetExists)
	}
	h.sets[name] = &actionSet{
		actions:  make(map[string]domain.ActionSpec),
		bindings: make(map[domain.BindingRecord]bool),
	}
	return nil
}

// CreateAction registers spec in set.
func (h *Host) CreateAction(ctx context.Context, set string, spec domain.ActionSpec) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Method: "CreateAction", Set: set, Name: spec.Name, Detail: string(spec.Kind)})

	if err := h.injected("CreateAction", spec.Name); err != nil {
		return err
	}
	s, ok := h.sets[set]
	if !ok {
		return fmt.Errorf("action set %q not found", set)
	}
	if _, dup := s.actions[spec.Name]; dup {
		return fmt.Errorf("action %q already exists in %q", spec.Name, set)
	}
	spec.Hands = append([]domain.Hand(nil), spec.Hands...)
	s.actions[spec.Name] = spec
	return nil
}

// CreateBinding registers rec in set.
func (h *Host) CreateBinding(ctx context.Context, set string, rec domain.BindingRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Method: "CreateBinding", Set: set, Name: rec.Action, Hand: rec.Hand, Detail: rec.Profile + ":" + rec.Path})

	if err := h.injected("CreateBinding", rec.Action+"@"+rec.Profile); err != nil {
		return err
	}
	s, ok := h.sets[set]
	if !ok {
		return fmt.Errorf("action set %q not found", set)
	}
	spec, ok := s.actions[rec.Action]
	if !ok {
		return fmt.Errorf("action %q not found in %q", rec.Action, set)
	}
	if !spec.HasHand(rec.Hand) {
		return fmt.Errorf("action %q is not declared for the %s hand", rec.Action, rec.Hand)
	}
	if s.bindings[rec] {
		return fmt.Errorf("binding %s %s already exists", rec.Action, rec.Path)
	}
	s.bindings[rec] = true
	return nil
}

// SetPoseSources designates the grip and aim pose actions of set.
func (h *Host) SetPoseSources(ctx context.Context, set, gripAction, aimAction string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Method: "SetPoseSources", Set: set, Name: gripAction, Detail: aimAction})

	if err := h.injected("SetPoseSources", set); err != nil {
		return err
	}
	s, ok := h.sets[set]
	if !ok {
		return fmt.Errorf("action set %q not found", set)
	}
	for _, name := range []string{gripAction, aimAction} {
		spec, ok := s.actions[name]
		if !ok {
			return fmt.Errorf("pose action %q not found in %q", name, set)
		}
		if spec.Kind != domain.KindPose {
			return fmt.Errorf("action %q is not a pose action", name)
		}
	}
	s.grip, s.aim = gripAction, aimAction
	return nil
}

// ActivateActionSet marks set as the active set.
func (h *Host) ActivateActionSet(ctx context.Context, set string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Method: "ActivateActionSet", Set: set, Name: set})

	if err := h.injected("ActivateActionSet", set); err != nil {
		return err
	}
	s, ok := h.sets[set]
	if !ok {
		return fmt.Errorf("action set %q not found", set)
	}
	s.active = true
	return nil
}

// Calls returns a copy of the recorded calls.
func (h *Host) Calls() []Call {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Call(nil), h.calls...)
}

// CallsOf returns the recorded calls of one method.
func (h *Host) CallsOf(method string) []Call {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var out []Call
	for _, c := range h.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Bindings returns the bindings registered in set.
func (h *Host) Bindings(set string) []domain.BindingRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sets[set]
	if !ok {
		return nil
	}
	out := make([]domain.BindingRecord, 0, len(s.bindings))
	for rec := range s.bindings {
		out = append(out, rec)
	}
	return out
}

// PoseSources returns the grip and aim actions designated for set.
func (h *Host) PoseSources(set string) (grip, aim string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if s, ok := h.sets[set]; ok {
		return s.grip, s.aim
	}
	return "", ""
}

// Active reports whether set has been activated.
func (h *Host) Active(set string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sets[set]
	return ok && s.active
}
