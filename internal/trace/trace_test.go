package trace

import (
	"strings"
	"testing"

	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	steps, err := Load("testdata/squeeze.yaml")
	require.NoError(t, err)
	require.Len(t, steps, 9)

	require.NotNil(t, steps[3].Action)
	assert.Equal(t, domain.ActionEvent{Action: "squeeze", Hand: domain.HandRight, Kind: domain.EventRelease, Value: 0}, *steps[3].Action)

	require.NotNil(t, steps[6].Mouse)
	assert.Equal(t, 120, steps[6].Mouse.X)

	require.NotNil(t, steps[7].Session)
	assert.False(t, *steps[7].Session)
}

func TestRead_JSON(t *testing.T) {
	steps, err := Read(strings.NewReader(`{"events": [{"action": "trigger", "hand": "/user/hand/left", "kind": "press", "value": "0.5"}]}`))
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, domain.HandLeft, steps[0].Action.Hand)
	assert.Equal(t, 0.5, steps[0].Action.Value)
}

func TestRead_Errors(t *testing.T) {
	tests := map[string]string{
		"bad hand":      "events:\n  - {action: trigger, hand: head, kind: press}\n",
		"empty step":    "events:\n  - {}\n",
		"unknown field": "events:\n  - {action: trigger, hand: left, pressure: 1}\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestRead_Empty(t *testing.T) {
	steps, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, steps)
}

type fakeHandler struct {
	actions, moves int
}

func (f *fakeHandler) HandleAction(domain.ActionEvent) domain.Disposition {
	f.actions++
	return domain.DispositionRunning
}

func (f *fakeHandler) HandleMouseMove(domain.MouseEvent) domain.Disposition {
	f.moves++
	return domain.DispositionPassThrough
}

func TestReplay(t *testing.T) {
	steps, err := Load("testdata/squeeze.yaml")
	require.NoError(t, err)

	h := &fakeHandler{}
	var sessions []bool
	out := Replay(steps, h, func(running bool) { sessions = append(sessions, running) })

	assert.Len(t, out, len(steps))
	assert.Equal(t, 6, h.actions)
	assert.Equal(t, 2, h.moves)
	assert.Equal(t, []bool{false}, sessions)
	assert.Empty(t, out[7].Disposition)
}
