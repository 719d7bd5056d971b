package redis_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/xrinput/internal/logging"
	"github.com/aretw0/xrinput/pkg/adapters/redis"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/aretw0/xrinput/pkg/dispatch"
	"github.com/aretw0/xrinput/pkg/domain"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Journal) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	journal := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = journal.Close() })
	return mr, journal
}

func TestJournal_AppendAndRecent(t *testing.T) {
	_, journal := setup(t, redis.WithStream("test:events"))
	ctx := context.Background()

	require.NoError(t, journal.Append(ctx, domain.PhaseUpdate, domain.EventData{Source: domain.SourceXRAction, Action: "trigger", Value: 1}))
	require.NoError(t, journal.Append(ctx, domain.PhaseComplete, domain.EventData{Source: domain.SourceXRAction, Action: "trigger", Value: 0}))

	entries, err := journal.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.PhaseUpdate, entries[0].Phase)
	assert.Equal(t, domain.PhaseComplete, entries[1].Phase)
	assert.Equal(t, "trigger", entries[1].Data.Action)
	assert.NotEmpty(t, entries[0].ID)

	last, err := journal.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, domain.PhaseComplete, last[0].Phase)
}

func TestJournal_MaxLen(t *testing.T) {
	_, journal := setup(t, redis.WithMaxLen(3))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, journal.Append(ctx, domain.PhaseUpdate, domain.EventData{Source: domain.SourceMouseMove, X: i}))
	}

	n, err := journal.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	entries, err := journal.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, entries[0].Data.X)
}

func TestJournal_AsConsumer(t *testing.T) {
	_, journal := setup(t)

	d, err := dispatch.New(catalog.Default(), catalog.DefaultThresholds(), journal)
	require.NoError(t, err)

	d.HandleAction(domain.ActionEvent{Action: "trigger", Hand: domain.HandLeft, Kind: domain.EventPress, Value: 1})
	d.HandleAction(domain.ActionEvent{Action: "trigger", Hand: domain.HandLeft, Kind: domain.EventRelease, Value: 0})

	entries, err := journal.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "dispatch.trigger_event_op", entries[0].Data.Handler)
	assert.Equal(t, domain.PhaseComplete, entries[1].Phase)
}

func TestJournal_WriteFailureIsLogged(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	client := backend.NewClient(&backend.Options{Addr: mr.Addr(), MaxRetries: -1})
	journal := redis.NewFromClient(client, redis.WithLogger(logging.NewWithWriter(&buf, slog.LevelWarn)))
	defer journal.Close()

	mr.Close()
	journal.OnEvent(domain.PhaseUpdate, domain.EventData{Source: domain.SourceMouseMove})

	assert.Contains(t, buf.String(), "journal write failed")
}
