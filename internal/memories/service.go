package memories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired   = errors.New("memory title is required")
	ErrNoFiles         = errors.New("at least one file is required")
	ErrUnsupportedType = errors.New("only image and video files are allowed")
)

// BlobStorage is where uploaded media lands. The MinIO-backed implementation
// lives in internal/storage/s3; tests use an in-memory fake.
type BlobStorage interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Remove(ctx context.Context, key string) error
}

// Presigner is implemented by blob storages that can mint short-lived
// download URLs for stored objects.
type Presigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (*url.URL, error)
}

// MediaURLTTL is how long a presigned media URL stays valid.
const MediaURLTTL = 15 * time.Minute

// Upload is one file of an upload request.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadRequest carries the upload form fields plus the selected files.
type UploadRequest struct {
	Title       string
	Description string
	Batch       string
	Uploader    string
	Files       []Upload
}

type Service struct {
	store   *Store
	storage BlobStorage
	logger  *slog.Logger
}

func NewService(store *Store, storage BlobStorage, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// Upload validates the request, stores every file in blob storage under a
// fresh object key, and appends the memory. The memory type is video if any
// file is a video, image otherwise.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (Memory, error) {
	if strings.TrimSpace(req.Title) == "" {
		return Memory{}, ErrTitleRequired
	}
	if len(req.Files) == 0 {
		return Memory{}, ErrNoFiles
	}

	memoryType := TypeImage
	for _, f := range req.Files {
		switch {
		case strings.HasPrefix(f.ContentType, "image/"):
		case strings.HasPrefix(f.ContentType, "video/"):
			memoryType = TypeVideo
		default:
			return Memory{}, ErrUnsupportedType
		}
	}

	keys := make([]string, 0, len(req.Files))
	for _, f := range req.Files {
		key := fmt.Sprintf("memories/%s%s", uuid.NewString(), filepath.Ext(f.Filename))
		if err := s.storage.Put(ctx, key, f.ContentType, f.Data); err != nil {
			s.logger.ErrorContext(ctx, "failed to store media file", "key", key, "error", err)
			// A partial upload leaves no orphaned objects behind.
			for _, stored := range keys {
				if rerr := s.storage.Remove(ctx, stored); rerr != nil {
					s.logger.ErrorContext(ctx, "failed to remove media file", "key", stored, "error", rerr)
				}
			}
			return Memory{}, fmt.Errorf("store media: %w", err)
		}
		keys = append(keys, key)
	}

	memory := s.store.Append(Memory{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Batch:       req.Batch,
		Type:        memoryType,
		Files:       keys,
		UploadDate:  time.Now().UTC(),
		Uploader:    req.Uploader,
	})

	s.logger.InfoContext(ctx, "memory uploaded", "id", memory.ID, "files", len(keys), "type", memoryType)

	return memory, nil
}

// WithMediaURLs resolves the memory's object keys into download URLs for a
// response. With a presigning storage the URLs are short-lived; a storage
// without a URL scheme passes the raw keys through. A presign failure falls
// back to the key so one bad object never hides the rest of the gallery.
func (s *Service) WithMediaURLs(ctx context.Context, m Memory) Memory {
	signer, ok := s.storage.(Presigner)
	if !ok {
		m.FileURLs = append([]string(nil), m.Files...)
		return m
	}

	urls := make([]string, 0, len(m.Files))
	for _, key := range m.Files {
		u, err := signer.PresignGet(ctx, key, MediaURLTTL)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to presign media file", "key", key, "error", err)
			urls = append(urls, key)
			continue
		}
		urls = append(urls, u.String())
	}
	m.FileURLs = urls
	return m
}
