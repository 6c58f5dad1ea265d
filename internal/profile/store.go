package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/kv"
)

// Well-known storage keys. A single profile blob lives under ProfileKey and
// the data-URL-encoded picture under PictureKey; multi-user operation suffixes
// the owner.
const (
	ProfileKey = "userProfile"
	PictureKey = "profilePicture"
)

// PictureMaxBytes caps the stored data-URL payload (5MB, matching the editor).
const PictureMaxBytes = 5 * 1024 * 1024

var (
	ErrNotImage     = errors.New("picture must be an image data URL")
	ErrPictureSize  = errors.New("picture exceeds the 5MB limit")
	ErrStoreFailure = errors.New("profile store failure")
)

// Store serializes profile records into the key-value slot. Load tolerates
// missing and corrupt data; Save leaves the previous value intact on failure.
type Store struct {
	kv     kv.Store
	logger *slog.Logger
}

func NewStore(store kv.Store, logger *slog.Logger) *Store {
	return &Store{kv: store, logger: logger}
}

func keyFor(base, owner string) string {
	if owner == "" {
		return base
	}
	return base + ":" + owner
}

// Save writes the record under the profile slot, stamping LastSaved. A
// serialization or storage failure is reported to the caller and logged, but
// the previously stored value is untouched.
func (s *Store) Save(ctx context.Context, owner string, record Record) error {
	record.LastSaved = time.Now().UTC()

	data, err := json.Marshal(record)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to serialize profile", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	if err := s.kv.Set(ctx, keyFor(ProfileKey, owner), string(data)); err != nil {
		s.logger.ErrorContext(ctx, "failed to store profile", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return nil
}

// Load reads the profile slot. An absent key is "no data" (nil, nil), not an
// error; a corrupt payload is logged and also reported as "no data" so a bad
// blob never breaks the editor.
func (s *Store) Load(ctx context.Context, owner string) (*Record, error) {
	data, err := s.kv.Get(ctx, keyFor(ProfileKey, owner))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		s.logger.ErrorContext(ctx, "failed to read profile", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		s.logger.WarnContext(ctx, "stored profile is corrupt, treating as no data", "error", err)
		return nil, nil
	}

	return &record, nil
}

// SavePicture stores a data-URL-encoded profile image under its own key.
func (s *Store) SavePicture(ctx context.Context, owner, dataURL string) error {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return ErrNotImage
	}
	if len(dataURL) > PictureMaxBytes {
		return ErrPictureSize
	}
	if err := s.kv.Set(ctx, keyFor(PictureKey, owner), dataURL); err != nil {
		s.logger.ErrorContext(ctx, "failed to store profile picture", "error", err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

// LoadPicture returns the stored data URL, or "" when none is set.
func (s *Store) LoadPicture(ctx context.Context, owner string) (string, error) {
	data, err := s.kv.Get(ctx, keyFor(PictureKey, owner))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return data, nil
}
