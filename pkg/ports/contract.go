package ports

import (
	"context"
	"testing"

	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunHostContract runs a suite of tests to verify that a HostRuntime implementation
// adheres to the registration contract. newHost must return a fresh host on every call.
func RunHostContract(t *testing.T, newHost func() HostRuntime) {
	ctx := context.Background()
	const set = "contract_actionset"

	trigger := domain.ActionSpec{
		Name:        "trigger",
		BindingName: "TRIGGER",
		Hands:       domain.BothHands,
		Kind:        domain.KindContinuous,
	}
	grip := domain.ActionSpec{
		Name:        "controller_grip",
		BindingName: "GRIP_POSE",
		Hands:       domain.BothHands,
		Kind:        domain.KindPose,
		Pose:        domain.PoseGrip,
	}

	t.Run("Create Set Twice", func(t *testing.T) {
		host := newHost()
		require.NoError(t, host.CreateActionSet(ctx, set))

		err := host.CreateActionSet(ctx, set)
		assert.ErrorIs(t, err, domain.ErrActionSetExists)
	})

	t.Run("Action Requires Set", func(t *testing.T) {
		host := newHost()
		err := host.CreateAction(ctx, "missing", trigger)
		assert.Error(t, err)
	})

	t.Run("Binding Requires Declared Hand", func(t *testing.T) {
		host := newHost()
		require.NoError(t, host.CreateActionSet(ctx, set))

		lefty := domain.ActionSpec{
			Name:        "joystick_x_lefthand",
			BindingName: "JOYSTICK_X",
			Hands:       []domain.Hand{domain.HandLeft},
			Kind:        domain.KindContinuous,
		}
		require.NoError(t, host.CreateAction(ctx, set, lefty))

		err := host.CreateBinding(ctx, set, domain.BindingRecord{
			Action:      lefty.Name,
			BindingName: lefty.BindingName,
			Hand:        domain.HandRight,
			Profile:     "oculus",
			Path:        "/input/thumbstick/x",
		})
		assert.Error(t, err)
	})

	t.Run("Duplicate Binding", func(t *testing.T) {
		host := newHost()
		require.NoError(t, host.CreateActionSet(ctx, set))
		require.NoError(t, host.CreateAction(ctx, set, trigger))

		rec := domain.BindingRecord{
			Action:      trigger.Name,
			BindingName: trigger.BindingName,
			Hand:        domain.HandLeft,
			Profile:     "oculus",
			Path:        "/input/trigger/value",
		}
		require.NoError(t, host.CreateBinding(ctx, set, rec))
		assert.Error(t, host.CreateBinding(ctx, set, rec), "second identical binding must be rejected")
	})

	t.Run("Pose Sources And Activation", func(t *testing.T) {
		host := newHost()
		require.NoError(t, host.CreateActionSet(ctx, set))
		require.NoError(t, host.CreateAction(ctx, set, grip))

		assert.Error(t, host.SetPoseSources(ctx, set, grip.Name, "controller_aim"), "unknown aim action")

		aim := grip
		aim.Name = "controller_aim"
		aim.BindingName = "AIM_POSE"
		aim.Pose = domain.PoseAim
		require.NoError(t, host.CreateAction(ctx, set, aim))

		require.NoError(t, host.SetPoseSources(ctx, set, grip.Name, aim.Name))
		require.NoError(t, host.ActivateActionSet(ctx, set))
		assert.Error(t, host.ActivateActionSet(ctx, "missing"))
	})
}
