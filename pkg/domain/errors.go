package domain

import (
	"errors"
	"fmt"
)

// ErrActionSetExists is returned by hosts when the reserved action set is already registered.
var ErrActionSetExists = errors.New("action set already exists")

// ErrNoConsumer is returned when a dispatcher is built without its event consumer.
var ErrNoConsumer = errors.New("event consumer is required")

// ErrNoHost is returned when session start is attempted without a host runtime.
var ErrNoHost = errors.New("host runtime is required")

// Stage names the registration step a RegistrationError happened in.
type Stage string

const (
	StageActionSet   Stage = "action_set"
	StageAction      Stage = "action"
	StageBinding     Stage = "binding"
	StagePoseSources Stage = "pose_sources"
	StageActivate    Stage = "activate"
)

// RegistrationError is raised when the host rejects a registration call.
// It is fatal to session start.
type RegistrationError struct {
	Stage Stage
	Name  string // action set, action, or "action -> binding"
	Err   error
}

func (e *RegistrationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("registration failed at %s: %s", e.Stage, e.Name)
	}
	return fmt.Sprintf("registration failed at %s: %s: %v", e.Stage, e.Name, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// ConfigError is raised when static configuration cannot support the catalog,
// e.g. a bimanual action whose binding has no activation threshold.
type ConfigError struct {
	BindingName string
	Action      string
	Reason      string
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("config error: binding %s (action %s): %s", e.BindingName, e.Action, e.Reason)
	}
	return fmt.Sprintf("config error: binding %s: %s", e.BindingName, e.Reason)
}
