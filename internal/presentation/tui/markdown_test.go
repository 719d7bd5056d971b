package tui

import (
	"context"
	"testing"

	"github.com/aretw0/xrinput/internal/trace"
	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogMarkdown(t *testing.T) {
	md := CatalogMarkdown(catalog.Default())

	assert.Contains(t, md, "# Action set `bl_controller_actionset`")
	assert.Contains(t, md, "| trigger | TRIGGER | left, right | continuous | `dispatch.trigger_event_op` |")
	assert.Contains(t, md, "| controller_grip | GRIP_POSE | left, right | pose (grip) | - |")
	assert.Contains(t, md, "| joystick_x_lefthand | JOYSTICK_X | left | continuous |")
	assert.Contains(t, md, "Grip pose: `controller_grip`, aim pose: `controller_aim`.")
}

func TestBindingsMarkdown(t *testing.T) {
	host := memory.NewHost()
	res, err := catalog.Materialize(context.Background(), host, catalog.Default(), catalog.WithDisabledProfiles("simple"))
	require.NoError(t, err)

	md := BindingsMarkdown(res)
	assert.Contains(t, md, "| created |")
	assert.Contains(t, md, "| simple |")
	assert.Contains(t, md, "| skipped |")

	again, err := catalog.Materialize(context.Background(), host, catalog.Default())
	require.NoError(t, err)
	assert.Contains(t, BindingsMarkdown(again), "already registered")
}

func TestDescribeStep(t *testing.T) {
	running := false
	assert.Equal(t, "release squeeze left 0.00", DescribeStep(trace.Step{
		Action: &domain.ActionEvent{Action: "squeeze", Hand: domain.HandLeft, Kind: domain.EventRelease},
	}))
	assert.Equal(t, "mouse 3,4", DescribeStep(trace.Step{Mouse: &domain.MouseEvent{X: 3, Y: 4}}))
	assert.Equal(t, "session stopped", DescribeStep(trace.Step{Session: &running}))
}
