package activity_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []activity.Event
	err    error
	closed bool
}

func (f *fakePublisher) Publish(ctx context.Context, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, value.(activity.Event))
	return nil
}

func (f *fakePublisher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestRecorder(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	t.Run("fans out to every publisher", func(t *testing.T) {
		first := &fakePublisher{}
		second := &fakePublisher{}
		recorder := activity.NewRecorder(logger, first, second)

		recorder.Record(ctx, activity.TypeUserLoggedIn, "john@example.com", "")

		require.Len(t, first.events, 1)
		require.Len(t, second.events, 1)
		assert.Equal(t, activity.TypeUserLoggedIn, first.events[0].Type)
		assert.Equal(t, "john@example.com", first.events[0].Email)
		assert.False(t, first.events[0].OccurredAt.IsZero())
	})

	t.Run("one failing publisher does not block the others", func(t *testing.T) {
		broken := &fakePublisher{err: errors.New("broker down")}
		healthy := &fakePublisher{}
		recorder := activity.NewRecorder(logger, broken, healthy)

		recorder.Record(ctx, activity.TypeMemoryUploaded, "jane@example.com", "Tech Fest")

		assert.Len(t, healthy.events, 1)
	})

	t.Run("no publishers is a no-op", func(t *testing.T) {
		recorder := activity.NewRecorder(logger)
		assert.NotPanics(t, func() {
			recorder.Record(ctx, activity.TypeProfileSaved, "x@example.com", "")
		})
	})

	t.Run("close closes every publisher", func(t *testing.T) {
		first := &fakePublisher{}
		second := &fakePublisher{}
		recorder := activity.NewRecorder(logger, first, second)

		recorder.Close()

		assert.True(t, first.closed)
		assert.True(t, second.closed)
	})
}
