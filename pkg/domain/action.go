package domain

import "fmt"

// Hand identifies one controller.
type Hand string

const (
	HandLeft  Hand = "left"
	HandRight Hand = "right"
)

// BothHands is the default hand set for actions tracked on both controllers.
var BothHands = []Hand{HandLeft, HandRight}

// UserPath returns the OpenXR user path for the hand.
func (h Hand) UserPath() string {
	if h == HandRight {
		return UserPathRight
	}
	return UserPathLeft
}

// Other returns the opposite hand.
func (h Hand) Other() Hand {
	if h == HandLeft {
		return HandRight
	}
	return HandLeft
}

// Valid reports whether h is one of the two known hands.
func (h Hand) Valid() bool {
	return h == HandLeft || h == HandRight
}

// ParseHand accepts "left", "right" or a full user path.
func ParseHand(s string) (Hand, error) {
	switch s {
	case "left", UserPathLeft:
		return HandLeft, nil
	case "right", UserPathRight:
		return HandRight, nil
	}
	return "", fmt.Errorf("unknown hand %q", s)
}

// ValueKind is the value type the runtime reports for an action.
type ValueKind string

const (
	KindContinuous ValueKind = "continuous" // float in [0,1] (or [-1,1] for axes)
	KindPose       ValueKind = "pose"
	KindVibration  ValueKind = "vibration" // output only
)

// PoseRole designates a pose action as the controller grip or aim source.
type PoseRole string

const (
	PoseNone PoseRole = ""
	PoseGrip PoseRole = "grip"
	PoseAim  PoseRole = "aim"
)

// ActionSpec describes one logical action. It is immutable once placed in a catalog.
type ActionSpec struct {
	Name        string    `json:"name" yaml:"name"`
	BindingName string    `json:"binding_name" yaml:"binding_name"`
	Hands       []Hand    `json:"hands" yaml:"hands"`
	Kind        ValueKind `json:"kind" yaml:"kind"`
	Pose        PoseRole  `json:"pose,omitempty" yaml:"pose,omitempty"`
}

// Bimanual reports whether the action has independent left and right occurrences.
func (a ActionSpec) Bimanual() bool {
	return len(a.Hands) == 2
}

// Dispatched reports whether the runtime emits action events for this action.
// Pose and vibration actions are registered but never reach the dispatcher.
func (a ActionSpec) Dispatched() bool {
	return a.Kind == KindContinuous
}

// HasHand reports whether the action is declared for h.
func (a ActionSpec) HasHand(h Hand) bool {
	for _, x := range a.Hands {
		if x == h {
			return true
		}
	}
	return false
}

// UserPaths returns the user paths of the declared hands, in declaration order.
func (a ActionSpec) UserPaths() []string {
	paths := make([]string, 0, len(a.Hands))
	for _, h := range a.Hands {
		paths = append(paths, h.UserPath())
	}
	return paths
}
