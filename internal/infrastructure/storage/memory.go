package storage

import (
	"context"
	"net/url"
	"sync"
	"time"

	apphostel "github.com/hostel/backend/internal/application/hostel"
)

// StoredObject is an object held by MemoryReceiptStore
type StoredObject struct {
	ContentType string
	Body        []byte
}

// MemoryReceiptStore keeps receipts in memory. It serves development setups
// without a bucket and tests.
type MemoryReceiptStore struct {
	// BaseURL prefixes generated download links
	BaseURL string

	mu      sync.RWMutex
	objects map[string]StoredObject
}

var _ apphostel.ReceiptStore = (*MemoryReceiptStore)(nil)

// NewMemoryReceiptStore creates an empty store
func NewMemoryReceiptStore(baseURL string) *MemoryReceiptStore {
	if baseURL == "" {
		baseURL = "http://localhost:8080/files"
	}
	return &MemoryReceiptStore{
		BaseURL: baseURL,
		objects: make(map[string]StoredObject),
	}
}

// PutObject stores a copy of body
func (s *MemoryReceiptStore) PutObject(ctx context.Context, key, contentType string, body []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = StoredObject{ContentType: contentType, Body: append([]byte(nil), body...)}
	return nil
}

// GenerateDownloadURL returns an unsigned link carrying the expiry
func (s *MemoryReceiptStore) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrEmptyKey
	}
	if expiresIn <= 0 {
		expiresIn = defaultPresignExpiration
	}
	expiresAt := time.Now().Add(expiresIn)
	link := s.BaseURL + "/" + key + "?expires=" + url.QueryEscape(expiresAt.UTC().Format(time.RFC3339))
	return link, expiresAt, nil
}

// Get returns the stored object
func (s *MemoryReceiptStore) Get(key string) (StoredObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	return obj, ok
}

// Len returns the number of stored objects
func (s *MemoryReceiptStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
