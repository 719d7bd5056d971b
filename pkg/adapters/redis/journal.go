package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/xrinput/internal/logging"
	"github.com/aretw0/xrinput/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Entry is one journaled normalized event.
type Entry struct {
	ID    string           `json:"id"`
	Phase domain.Phase     `json:"phase"`
	Data  domain.EventData `json:"data"`
}

// Journal implements ports.Consumer by appending every event to a Redis stream.
type Journal struct {
	client  *backend.Client
	stream  string
	maxLen  int64
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Journal)

// WithStream sets the stream key.
func WithStream(stream string) Option {
	return func(j *Journal) {
		j.stream = stream
	}
}

// WithMaxLen caps the stream length (0 means unbounded).
func WithMaxLen(n int64) Option {
	return func(j *Journal) {
		j.maxLen = n
	}
}

// WithTimeout bounds each write issued from OnEvent.
func WithTimeout(d time.Duration) Option {
	return func(j *Journal) {
		j.timeout = d
	}
}

// WithLogger sets the logger used for write failures in OnEvent.
func WithLogger(logger *slog.Logger) Option {
	return func(j *Journal) {
		if logger != nil {
			j.logger = logger
		}
	}
}

// New creates a new Redis journal with options.
func New(address, password string, db int, opts ...Option) *Journal {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis journal from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Journal {
	j := &Journal{
		client:  client,
		stream:  "xrinput:events",
		maxLen:  10000,
		timeout: 50 * time.Millisecond,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// OnEvent appends the event to the stream.
// Dispatch cannot fail, so write errors are logged and dropped.
func (j *Journal) OnEvent(phase domain.Phase, data domain.EventData) {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.Append(ctx, phase, data); err != nil {
		j.logger.Warn("journal write failed", "stream", j.stream, "error", err)
	}
}

// Append writes one event to the stream.
func (j *Journal) Append(ctx context.Context, phase domain.Phase, data domain.EventData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = j.client.XAdd(ctx, &backend.XAddArgs{
		Stream: j.stream,
		MaxLen: j.maxLen,
		Values: map[string]any{
			"phase": string(phase),
			"data":  payload,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to append to redis stream: %w", err)
	}
	return nil
}

// Recent returns up to n of the latest entries, oldest first.
func (j *Journal) Recent(ctx context.Context, n int64) ([]Entry, error) {
	msgs, err := j.client.XRevRangeN(ctx, j.stream, "+", "-", n).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read redis stream: %w", err)
	}

	entries := make([]Entry, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		msg := msgs[i]
		entry := Entry{ID: msg.ID}

		if p, ok := msg.Values["phase"].(string); ok {
			entry.Phase = domain.Phase(p)
		}
		if raw, ok := msg.Values["data"].(string); ok {
			if err := json.Unmarshal([]byte(raw), &entry.Data); err != nil {
				return nil, fmt.Errorf("failed to unmarshal entry %s: %w", msg.ID, err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Len returns the number of entries in the stream.
func (j *Journal) Len(ctx context.Context) (int64, error) {
	return j.client.XLen(ctx, j.stream).Result()
}

// Close closes the redis client.
func (j *Journal) Close() error {
	return j.client.Close()
}
