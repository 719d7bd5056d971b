package ports

import (
	"context"

	"github.com/aretw0/xrinput/pkg/domain"
)

// HostRuntime is the XR runtime's registration capability.
// Handles are the names used at creation time; the host owns the records.
type HostRuntime interface {
	// CreateActionSet registers a new, inactive action set.
	// Implementations should wrap domain.ErrActionSetExists when the name is taken.
	CreateActionSet(ctx context.Context, name string) error

	// CreateAction registers one action (with all of its hands) inside set.
	CreateAction(ctx context.Context, set string, spec domain.ActionSpec) error

	// CreateBinding maps one hand of an action onto a component path of one interaction profile.
	CreateBinding(ctx context.Context, set string, rec domain.BindingRecord) error

	// SetPoseSources designates the controller grip and aim pose actions.
	SetPoseSources(ctx context.Context, set, gripAction, aimAction string) error

	// ActivateActionSet starts tracking the set.
	ActivateActionSet(ctx context.Context, set string) error

	// IsSessionRunning reports whether an XR session is currently running.
	IsSessionRunning() bool
}

// ActionSetInspector is implemented by hosts that can tell whether a set is already registered.
type ActionSetInspector interface {
	HasActionSet(name string) bool
}
