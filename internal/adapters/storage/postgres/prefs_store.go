package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"pawbuddy-client/internal/ports/prefs"
)

const schemaPrefs = `
	CREATE TABLE IF NOT EXISTS client_prefs (
		namespace  TEXT NOT NULL,
		key        TEXT NOT NULL,
		value      TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (namespace, key)
	)
`

type PrefsStore struct {
	db *sql.DB
}

var _ prefs.Store = (*PrefsStore)(nil)

func NewPrefsStore(db *sql.DB) *PrefsStore {
	return &PrefsStore{db: db}
}

// EnsureSchema crea la tabla si no existe.
func (s *PrefsStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaPrefs); err != nil {
		return fmt.Errorf("client_prefs schema: %w", err)
	}
	return nil
}

func (s *PrefsStore) Load(ctx context.Context, namespace string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value
		FROM client_prefs
		WHERE namespace = $1
	`, namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", prefs.ErrUnavailable, err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Save reemplaza el namespace dentro de una transacción.
func (s *PrefsStore) Save(ctx context.Context, namespace string, values map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", prefs.ErrUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM client_prefs WHERE namespace = $1`, namespace); err != nil {
		return err
	}
	for k, v := range values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO client_prefs (namespace, key, value)
			VALUES ($1, $2, $3)
		`, namespace, k, v); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PrefsStore) Clear(ctx context.Context, namespace string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM client_prefs WHERE namespace = $1`, namespace); err != nil {
		return fmt.Errorf("%w: %v", prefs.ErrUnavailable, err)
	}
	return nil
}
