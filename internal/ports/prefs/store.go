package prefs

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("prefs backend unavailable")

// Store persiste pares key/value agrupados por namespace.
// Save reemplaza el namespace completo (no hace merge).
type Store interface {
	Load(ctx context.Context, namespace string) (map[string]string, error)
	Save(ctx context.Context, namespace string, values map[string]string) error
	Clear(ctx context.Context, namespace string) error
}
