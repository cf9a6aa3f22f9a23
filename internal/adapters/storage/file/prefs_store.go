package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"pawbuddy-client/internal/ports/prefs"
)

// PrefsStore guarda todos los namespaces en un único documento YAML:
//
//	pawbuddy:
//	  isLogged: "true"
//	  userId: "42"
type PrefsStore struct {
	mu   sync.Mutex
	path string
}

var _ prefs.Store = (*PrefsStore)(nil)

func NewPrefsStore(path string) *PrefsStore {
	return &PrefsStore{path: path}
}

func (s *PrefsStore) Path() string { return s.path }

func (s *PrefsStore) Load(ctx context.Context, namespace string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(doc[namespace]))
	for k, v := range doc[namespace] {
		out[k] = v
	}
	return out, nil
}

func (s *PrefsStore) Save(ctx context.Context, namespace string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	ns := make(map[string]string, len(values))
	for k, v := range values {
		ns[k] = v
	}
	doc[namespace] = ns
	return s.write(doc)
}

func (s *PrefsStore) Clear(ctx context.Context, namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := doc[namespace]; !ok {
		return nil
	}
	delete(doc, namespace)
	return s.write(doc)
}

func (s *PrefsStore) read() (map[string]map[string]string, error) {
	doc := map[string]map[string]string{}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", prefs.ErrUnavailable, s.path, err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("prefs file %s: invalid yaml: %w", s.path, err)
	}
	if doc == nil {
		doc = map[string]map[string]string{}
	}
	return doc, nil
}

// write escribe a un temporal y renombra, para no dejar el archivo a medias.
func (s *PrefsStore) write(doc map[string]map[string]string) error {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("prefs file: marshal yaml: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", prefs.ErrUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", prefs.ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write temp: %v", prefs.ErrUnavailable, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: chmod temp: %v", prefs.ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp: %v", prefs.ErrUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: rename: %v", prefs.ErrUnavailable, err)
	}
	return nil
}
