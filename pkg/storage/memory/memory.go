package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/MMansij/New-Int/pkg/storage"
)

var _ storage.Provider = (*Store)(nil)

// DefaultCapacity is how many recent uploads a store keeps by default.
const DefaultCapacity = 32

// Store keeps the most recent documents in process memory under the mem://
// scheme. Older documents are evicted first.
type Store struct {
	mu sync.RWMutex

	bucket   string
	capacity int

	order   []string
	objects map[string]storage.File
}

type Option func(*Store)

// WithCapacity bounds the number of retained documents. Zero keeps none.
func WithCapacity(capacity int) Option {
	return func(s *Store) {
		s.capacity = max(capacity, 0)
	}
}

func New(bucket string, options ...Option) *Store {
	if bucket == "" {
		bucket = "memory"
	}

	s := &Store{
		bucket:   bucket,
		capacity: DefaultCapacity,

		objects: make(map[string]storage.File),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *Store) Store(ctx context.Context, file storage.File) (*storage.Locator, error) {
	if err := ctx.Err(); err != nil {
		return nil, &storage.Error{Err: err}
	}

	key := storage.ObjectKey("uploads", file.Name)

	locator := &storage.Locator{
		Scheme: "mem",
		Bucket: s.bucket,
		Key:    key,
	}

	if s.capacity == 0 {
		return locator, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.order) >= s.capacity {
		delete(s.objects, s.order[0])
		s.order = slices.Delete(s.order, 0, 1)
	}

	s.order = append(s.order, key)

	s.objects[key] = storage.File{
		Name: file.Name,

		Content:     append([]byte(nil), file.Content...),
		ContentType: storage.ContentType(file),
	}

	return locator, nil
}

func (s *Store) Get(key string) (storage.File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.objects[key]
	return f, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}
