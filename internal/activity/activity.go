package activity

import (
	"context"
	"log/slog"
	"time"
)

// Publisher is the transport an activity event is published over
// (NATS, Kafka).
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
	Close() error
}

// Event describes a notable action in the portal, keyed by the acting
// user's email.
type Event struct {
	Type       string    `json:"type"`
	Email      string    `json:"email"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

const (
	TypeUserRegistered = "user.registered"
	TypeUserLoggedIn   = "user.logged_in"
	TypeAlumniAdded    = "alumni.added"
	TypeMemoryUploaded = "memory.uploaded"
	TypeProfileSaved   = "profile.saved"
)

// Recorder fans an event out to every configured publisher. Publish
// failures are logged and swallowed so a broker outage never fails the
// request that produced the event.
type Recorder struct {
	publishers []Publisher
	logger     *slog.Logger
}

func NewRecorder(logger *slog.Logger, publishers ...Publisher) *Recorder {
	return &Recorder{
		publishers: publishers,
		logger:     logger,
	}
}

func (r *Recorder) Record(ctx context.Context, eventType string, email string, detail string) {
	if r == nil || len(r.publishers) == 0 {
		return
	}

	event := Event{
		Type:       eventType,
		Email:      email,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	}

	for _, p := range r.publishers {
		if err := p.Publish(ctx, email, event); err != nil {
			r.logger.ErrorContext(ctx, "failed to publish activity event", "type", eventType, "error", err)
		}
	}
}

func (r *Recorder) Close() {
	if r == nil {
		return
	}
	for _, p := range r.publishers {
		if err := p.Close(); err != nil {
			r.logger.Error("failed to close publisher", "error", err)
		}
	}
}
