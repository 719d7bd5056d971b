package catalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindingKey struct {
	action  string
	hand    domain.Hand
	profile string
}

func TestMaterialize_BindingCompleteness(t *testing.T) {
	ctx := context.Background()
	cat := catalog.Default()
	host := memory.NewHost()

	res, err := catalog.Materialize(ctx, host, cat, catalog.WithDisabledProfiles("vive", "simple"))
	require.NoError(t, err)
	assert.False(t, res.Reused)

	calls := make(map[bindingKey]int)
	for _, c := range host.CallsOf("CreateBinding") {
		profile, _, _ := strings.Cut(c.Detail, ":")
		calls[bindingKey{c.Name, c.Hand, profile}]++
	}

	expected := 0
	for _, s := range cat.Specs() {
		for _, h := range s.Hands {
			for _, rec := range catalog.ProfileBindings(s.BindingName, h) {
				key := bindingKey{s.Name, h, rec.Profile}
				if rec.Profile == "vive" || rec.Profile == "simple" {
					assert.Zero(t, calls[key], "disabled profile must not be bound: %+v", key)
					continue
				}
				expected++
				assert.Equal(t, 1, calls[key], "expected exactly one binding call for %+v", key)
			}
		}
	}

	assert.Len(t, host.CallsOf("CreateBinding"), expected)
	assert.Len(t, res.Created, expected)
	assert.NotEmpty(t, res.Skipped)
	for _, rec := range res.Skipped {
		assert.Contains(t, []string{"vive", "simple"}, rec.Profile)
	}
}

func TestMaterialize_OneActionPerSpec(t *testing.T) {
	ctx := context.Background()
	cat := catalog.Default()
	host := memory.NewHost()

	_, err := catalog.Materialize(ctx, host, cat)
	require.NoError(t, err)

	actions := host.CallsOf("CreateAction")
	require.Len(t, actions, cat.Len())
	for i, s := range cat.Specs() {
		assert.Equal(t, s.Name, actions[i].Name)
	}
}

func TestMaterialize_PoseSourcesAndActivation(t *testing.T) {
	ctx := context.Background()
	host := memory.NewHost()

	_, err := catalog.Materialize(ctx, host, catalog.Default())
	require.NoError(t, err)

	poses := host.CallsOf("SetPoseSources")
	require.Len(t, poses, 1)
	grip, aim := host.PoseSources(catalog.ActionSetName)
	assert.Equal(t, "controller_grip", grip)
	assert.Equal(t, "controller_aim", aim)
	assert.True(t, host.Active(catalog.ActionSetName))

	calls := host.Calls()
	assert.Equal(t, "CreateActionSet", calls[0].Method)
	assert.Equal(t, "ActivateActionSet", calls[len(calls)-1].Method)
}

func TestMaterialize_Idempotent(t *testing.T) {
	ctx := context.Background()
	cat := catalog.Default()

	t.Run("Inspecting host is a no-op", func(t *testing.T) {
		host := memory.NewHost()
		_, err := catalog.Materialize(ctx, host, cat)
		require.NoError(t, err)
		before := len(host.Calls())

		res, err := catalog.Materialize(ctx, host, cat)
		require.NoError(t, err)
		assert.True(t, res.Reused)
		assert.Len(t, host.Calls(), before)
	})

	t.Run("Blind host fails cleanly", func(t *testing.T) {
		host := memory.NewHost(memory.WithoutInspection())
		_, err := catalog.Materialize(ctx, host, cat)
		require.NoError(t, err)
		bindings := len(host.Bindings(catalog.ActionSetName))

		_, err = catalog.Materialize(ctx, host, cat)
		var regErr *domain.RegistrationError
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, domain.StageActionSet, regErr.Stage)
		assert.ErrorIs(t, err, domain.ErrActionSetExists)
		assert.Len(t, host.Bindings(catalog.ActionSetName), bindings, "bindings must never be duplicated")
	})
}

func TestMaterialize_FailureAborts(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("unsupported component")

	tests := []struct {
		name   string
		method string
		key    string
		stage  domain.Stage
		needle string
	}{
		{"action set", "CreateActionSet", catalog.ActionSetName, domain.StageActionSet, catalog.ActionSetName},
		{"action", "CreateAction", "squeeze", domain.StageAction, "squeeze"},
		{"binding", "CreateBinding", "trigger@index", domain.StageBinding, "trigger -> index"},
		{"pose sources", "SetPoseSources", catalog.ActionSetName, domain.StagePoseSources, "controller_grip"},
		{"activate", "ActivateActionSet", catalog.ActionSetName, domain.StageActivate, catalog.ActionSetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := memory.NewHost()
			host.FailOn(tt.method, tt.key, boom)

			res, err := catalog.Materialize(ctx, host, catalog.Default())
			assert.Nil(t, res)

			var regErr *domain.RegistrationError
			require.True(t, errors.As(err, &regErr))
			assert.Equal(t, tt.stage, regErr.Stage)
			assert.Contains(t, regErr.Name, tt.needle)
			assert.ErrorIs(t, err, boom)

			if tt.stage != domain.StageActivate {
				assert.False(t, host.Active(catalog.ActionSetName), "no activation after a failed step")
			}
		})
	}
}

func TestMaterialize_Hooks(t *testing.T) {
	ctx := context.Background()
	var created, skipped int
	hooks := domain.LifecycleHooks{
		OnBindingCreated: func(domain.BindingRecord) { created++ },
		OnBindingSkipped: func(domain.BindingRecord) { skipped++ },
	}

	res, err := catalog.Materialize(ctx, memory.NewHost(), catalog.Default(),
		catalog.WithHooks(hooks),
		catalog.WithDisabledProfiles("oculus"),
	)
	require.NoError(t, err)
	assert.Equal(t, len(res.Created), created)
	assert.Equal(t, len(res.Skipped), skipped)
}

func TestMaterialize_RequiresHost(t *testing.T) {
	_, err := catalog.Materialize(context.Background(), nil, catalog.Default())
	assert.ErrorIs(t, err, domain.ErrNoHost)
}
