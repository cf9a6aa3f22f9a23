package auth

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionResolver traduce el id de la cookie de sesión a claims.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (Claims, error)
}
