package memory

import (
	"context"
	"sync"

	"pawbuddy-client/internal/ports/prefs"
)

type prefsStore struct {
	mu   sync.RWMutex
	byNS map[string]map[string]string
}

func NewPrefsStore() prefs.Store {
	return &prefsStore{
		byNS: make(map[string]map[string]string),
	}
}

func (s *prefsStore) Load(ctx context.Context, namespace string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyValues(s.byNS[namespace]), nil
}

func (s *prefsStore) Save(ctx context.Context, namespace string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byNS[namespace] = copyValues(values)
	return nil
}

func (s *prefsStore) Clear(ctx context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byNS, namespace)
	return nil
}

func copyValues(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
