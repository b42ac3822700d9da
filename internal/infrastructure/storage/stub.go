package storage

import (
	"context"
	"net/url"
	"sync"
	"time"

	jobapp "github.com/hirecoder/backend/internal/application/job"
)

var _ jobapp.AttachmentStorage = (*StubStorage)(nil)

// StubStorage hands out fake URLs when no bucket is configured.
// Every key it has presigned an upload for counts as existing.
type StubStorage struct {
	baseURL string

	mu      sync.RWMutex
	objects map[string]struct{}
}

// NewStubStorage creates a StubStorage whose URLs start with baseURL
func NewStubStorage(baseURL string) *StubStorage {
	if baseURL == "" {
		baseURL = "http://localhost:9000/attachments"
	}
	return &StubStorage{baseURL: baseURL, objects: make(map[string]struct{})}
}

// GenerateUploadURL returns a fake PUT URL and marks key as uploaded
func (s *StubStorage) GenerateUploadURL(_ context.Context, key, _ string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errEmptyKey
	}
	s.mu.Lock()
	s.objects[key] = struct{}{}
	s.mu.Unlock()
	expiresAt := time.Now().Add(expiresIn)
	return s.url("upload", key, expiresAt), expiresAt, nil
}

// GenerateDownloadURL returns a fake GET URL
func (s *StubStorage) GenerateDownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errEmptyKey
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.url("download", key, expiresAt), expiresAt, nil
}

// ObjectExists reports whether an upload was presigned for key
func (s *StubStorage) ObjectExists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errEmptyKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// DeleteObject forgets key
func (s *StubStorage) DeleteObject(_ context.Context, key string) error {
	if key == "" {
		return errEmptyKey
	}
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *StubStorage) url(op, key string, expiresAt time.Time) string {
	q := url.Values{}
	q.Set("expires", expiresAt.UTC().Format(time.RFC3339))
	return s.baseURL + "/" + op + "/" + key + "?" + q.Encode()
}
