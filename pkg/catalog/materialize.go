package catalog

import (
	"context"
	"log/slog"

	"github.com/aretw0/xrinput/internal/logging"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/ports"
)

// Result reports what Materialize did on the host.
type Result struct {
	ActionSet string
	Actions   []string
	Created   []domain.BindingRecord
	Skipped   []domain.BindingRecord

	// Reused is true when the host already had the reserved set and nothing was registered.
	Reused bool
}

type materializer struct {
	disabled map[string]bool
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// MaterializeOption configures Materialize.
type MaterializeOption func(*materializer)

// WithDisabledProfiles sets the interaction profiles whose bindings must not be created.
func WithDisabledProfiles(ids ...string) MaterializeOption {
	return func(m *materializer) {
		for _, id := range ids {
			m.disabled[id] = true
		}
	}
}

// WithLogger sets a structured logger for registration progress.
func WithLogger(logger *slog.Logger) MaterializeOption {
	return func(m *materializer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHooks registers binding observability hooks.
func WithHooks(hooks domain.LifecycleHooks) MaterializeOption {
	return func(m *materializer) {
		m.hooks = hooks
	}
}

// Materialize registers the catalog with the host runtime and activates it.
//
// The first call the host rejects aborts with a *domain.RegistrationError; nothing is
// rolled back and nothing is retried. When the host implements ports.ActionSetInspector
// and already holds the reserved set, Materialize returns a Reused result without
// touching the host.
func Materialize(ctx context.Context, host ports.HostRuntime, cat *Catalog, opts ...MaterializeOption) (*Result, error) {
	if host == nil {
		return nil, domain.ErrNoHost
	}

	m := &materializer{
		disabled: make(map[string]bool),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	res := &Result{ActionSet: ActionSetName}

	if insp, ok := host.(ports.ActionSetInspector); ok && insp.HasActionSet(ActionSetName) {
		m.logger.Info("action set already registered, skipping", "action_set", ActionSetName)
		res.Reused = true
		return res, nil
	}

	// 1. Action set
	if err := host.CreateActionSet(ctx, ActionSetName); err != nil {
		return nil, &domain.RegistrationError{Stage: domain.StageActionSet, Name: ActionSetName, Err: err}
	}

	// 2 + 3. Actions and their bindings
	for _, spec := range cat.specs {
		if err := ctx.Err(); err != nil {
			return nil, &domain.RegistrationError{Stage: domain.StageAction, Name: spec.Name, Err: err}
		}

		if err := host.CreateAction(ctx, ActionSetName, spec); err != nil {
			return nil, &domain.RegistrationError{Stage: domain.StageAction, Name: spec.Name, Err: err}
		}
		res.Actions = append(res.Actions, spec.Name)
		m.logger.Debug("action created", "action", spec.Name, "kind", spec.Kind, "hands", len(spec.Hands))

		for _, hand := range spec.Hands {
			for _, rec := range ProfileBindings(spec.BindingName, hand) {
				rec.Action = spec.Name

				if m.disabled[rec.Profile] {
					m.logger.Debug("binding skipped", "action", spec.Name, "profile", rec.Profile)
					res.Skipped = append(res.Skipped, rec)
					if m.hooks.OnBindingSkipped != nil {
						m.hooks.OnBindingSkipped(rec)
					}
					continue
				}

				if err := host.CreateBinding(ctx, ActionSetName, rec); err != nil {
					return nil, &domain.RegistrationError{
						Stage: domain.StageBinding,
						Name:  spec.Name + " -> " + rec.Profile + ":" + rec.Path,
						Err:   err,
					}
				}
				res.Created = append(res.Created, rec)
				if m.hooks.OnBindingCreated != nil {
					m.hooks.OnBindingCreated(rec)
				}
			}
		}
	}

	// 4. Pose tracking
	if err := host.SetPoseSources(ctx, ActionSetName, cat.grip, cat.aim); err != nil {
		return nil, &domain.RegistrationError{Stage: domain.StagePoseSources, Name: cat.grip + "/" + cat.aim, Err: err}
	}

	// 5. Start tracking
	if err := host.ActivateActionSet(ctx, ActionSetName); err != nil {
		return nil, &domain.RegistrationError{Stage: domain.StageActivate, Name: ActionSetName, Err: err}
	}

	m.logger.Info("action set active",
		"action_set", ActionSetName,
		"actions", len(res.Actions),
		"bindings", len(res.Created),
		"skipped", len(res.Skipped),
	)
	return res, nil
}
