package memory

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"pawbuddy-client/internal/domain/animals"
)

type imageStore struct {
	mu     sync.RWMutex
	byName map[string][]byte
}

func NewImageStore() animals.ImageStore {
	return &imageStore{byName: make(map[string][]byte)}
}

// Save asigna un nombre nuevo (uuid + extensión original) para no pisar
// imágenes con el mismo nombre de archivo.
func (s *imageStore) Save(ctx context.Context, img animals.Image) (string, error) {
	ext := strings.ToLower(path.Ext(img.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	data := make([]byte, len(img.Data))
	copy(data, img.Data)

	s.mu.Lock()
	s.byName[name] = data
	s.mu.Unlock()
	return name, nil
}

func (s *imageStore) Open(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.byName[name]
	if !ok {
		return nil, animals.ErrImageNotFound
	}
	return data, nil
}

func (s *imageStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byName, name)
	return nil
}
