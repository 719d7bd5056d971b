package domain

// EventKind is the transition reported by the runtime for an action event.
type EventKind string

const (
	EventPress   EventKind = "press"
	EventUpdate  EventKind = "update"
	EventRelease EventKind = "release"
	EventOther   EventKind = "other" // anything the runtime reports that is neither of the above
)

// ParseEventKind maps runtime spellings ("PRESS", "release", ...) onto EventKind.
// Unknown spellings map to EventOther.
func ParseEventKind(s string) EventKind {
	switch s {
	case "press", "PRESS":
		return EventPress
	case "update", "UPDATE", "NOTHING":
		return EventUpdate
	case "release", "RELEASE":
		return EventRelease
	}
	return EventOther
}

// ActionEvent is a raw event for one hand's occurrence of an action.
type ActionEvent struct {
	Action string    `json:"action" mapstructure:"action"`
	Hand   Hand      `json:"hand" mapstructure:"hand"`
	Kind   EventKind `json:"kind" mapstructure:"kind"`
	Value  float64   `json:"value" mapstructure:"value"`
}

// MouseEvent is a window mouse-move event.
type MouseEvent struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

// Phase is the normalized event kind handed to the consumer.
type Phase string

const (
	PhaseUpdate   Phase = "update"
	PhaseComplete Phase = "complete"
)

// Source tells which input stream produced a normalized event.
type Source string

const (
	SourceXRAction  Source = "xr_action"
	SourceMouseMove Source = "mouse_move"
)

// EventData is the payload of a normalized event.
type EventData struct {
	Source   Source    `json:"source"`
	Action   string    `json:"action,omitempty"`
	Handler  string    `json:"handler,omitempty"`
	Hand     Hand      `json:"hand,omitempty"`
	Kind     EventKind `json:"kind,omitempty"`
	Value    float64   `json:"value"`
	Bimanual bool      `json:"bimanual,omitempty"`
	X        int       `json:"x,omitempty"`
	Y        int       `json:"y,omitempty"`
}

// BindingRecord describes one physical binding created (or skipped) on the host.
type BindingRecord struct {
	Action      string `json:"action"`
	BindingName string `json:"binding_name"`
	Hand        Hand   `json:"hand"`
	Profile     string `json:"profile"`
	Path        string `json:"path"`
}

// LifecycleHooks defines callbacks for observability. All fields are optional.
type LifecycleHooks struct {
	OnForward        func(phase Phase, data EventData)
	OnDefer          func(ev ActionEvent, otherValue, threshold float64)
	OnIgnore         func(ev ActionEvent)
	OnMouseCancel    func()
	OnBindingCreated func(rec BindingRecord)
	OnBindingSkipped func(rec BindingRecord)
}

// Merge returns hooks that call h first and then other, for every non-nil callback.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnForward: func(p Phase, d EventData) {
			if h.OnForward != nil {
				h.OnForward(p, d)
			}
			if other.OnForward != nil {
				other.OnForward(p, d)
			}
		},
		OnDefer: func(ev ActionEvent, o, t float64) {
			if h.OnDefer != nil {
				h.OnDefer(ev, o, t)
			}
			if other.OnDefer != nil {
				other.OnDefer(ev, o, t)
			}
		},
		OnIgnore: func(ev ActionEvent) {
			if h.OnIgnore != nil {
				h.OnIgnore(ev)
			}
			if other.OnIgnore != nil {
				other.OnIgnore(ev)
			}
		},
		OnMouseCancel: func() {
			if h.OnMouseCancel != nil {
				h.OnMouseCancel()
			}
			if other.OnMouseCancel != nil {
				other.OnMouseCancel()
			}
		},
		OnBindingCreated: func(r BindingRecord) {
			if h.OnBindingCreated != nil {
				h.OnBindingCreated(r)
			}
			if other.OnBindingCreated != nil {
				other.OnBindingCreated(r)
			}
		},
		OnBindingSkipped: func(r BindingRecord) {
			if h.OnBindingSkipped != nil {
				h.OnBindingSkipped(r)
			}
			if other.OnBindingSkipped != nil {
				other.OnBindingSkipped(r)
			}
		},
	}
}
