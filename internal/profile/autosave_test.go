package profile_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveRecorder collects every record passed to save.
type saveRecorder struct {
	mu    sync.Mutex
	saved []profile.Record
}

func (s *saveRecorder) save(ctx context.Context, record profile.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, record)
	return nil
}

func (s *saveRecorder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func (s *saveRecorder) last() profile.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved[len(s.saved)-1]
}

func TestAutosaverDebounce(t *testing.T) {
	var mu sync.Mutex
	current := profile.Record{}
	snapshot := func() profile.Record {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	setBio := func(bio string) {
		mu.Lock()
		current.Bio = bio
		mu.Unlock()
	}

	t.Run("several edits inside the quiet interval collapse to one save", func(t *testing.T) {
		recorder := &saveRecorder{}
		saver := profile.NewAutosaver(50*time.Millisecond, snapshot, recorder.save)
		defer saver.Stop()

		for i, bio := range []string{"d", "dr", "dra", "draft"} {
			setBio(bio)
			saver.Touch()
			if i < 3 {
				time.Sleep(10 * time.Millisecond)
			}
		}

		// Quiet interval passes after the last edit.
		assert.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, 5*time.Millisecond)

		// The save carries the value at fire time, not at schedule time.
		assert.Equal(t, "draft", recorder.last().Bio)

		// No further saves fire without new edits.
		time.Sleep(120 * time.Millisecond)
		assert.Equal(t, 1, recorder.count())
	})

	t.Run("flush saves immediately and cancels the pending save", func(t *testing.T) {
		recorder := &saveRecorder{}
		saver := profile.NewAutosaver(80*time.Millisecond, snapshot, recorder.save)
		defer saver.Stop()

		setBio("about to blur")
		saver.Touch()
		saver.Flush()

		require.Equal(t, 1, recorder.count())
		assert.Equal(t, "about to blur", recorder.last().Bio)

		// The cancelled timer never fires a second save.
		time.Sleep(150 * time.Millisecond)
		assert.Equal(t, 1, recorder.count())
	})

	t.Run("stop cancels the pending save", func(t *testing.T) {
		recorder := &saveRecorder{}
		saver := profile.NewAutosaver(30*time.Millisecond, snapshot, recorder.save)

		saver.Touch()
		saver.Stop()

		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, 0, recorder.count())

		// Touch after Stop is a no-op.
		saver.Touch()
		time.Sleep(80 * time.Millisecond)
		assert.Equal(t, 0, recorder.count())
	})

	t.Run("flush racing the timer never loses the save", func(t *testing.T) {
		recorder := &saveRecorder{}
		// A 1ns interval makes the timer expire before (or while) Flush
		// runs, so the expired-timer path is taken constantly.
		saver := profile.NewAutosaver(time.Nanosecond, snapshot, recorder.save)
		defer saver.Stop()

		const cycles = 200
		for i := 0; i < cycles; i++ {
			saver.Touch()
			saver.Flush()
		}

		// Every cycle saves at least once, whether Flush or the expired
		// timer got there; it never saves more than once per actor.
		require.Eventually(t, func() bool { return recorder.count() >= cycles }, time.Second, time.Millisecond)
		assert.LessOrEqual(t, recorder.count(), 2*cycles)
	})

	t.Run("separate quiet periods produce separate saves", func(t *testing.T) {
		recorder := &saveRecorder{}
		saver := profile.NewAutosaver(20*time.Millisecond, snapshot, recorder.save)
		defer saver.Stop()

		saver.Touch()
		require.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, 5*time.Millisecond)

		saver.Touch()
		require.Eventually(t, func() bool { return recorder.count() == 2 }, time.Second, 5*time.Millisecond)
	})
}
