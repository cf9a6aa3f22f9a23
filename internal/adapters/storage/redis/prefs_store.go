package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"pawbuddy-client/internal/ports/prefs"
)

const keyPrefix = "pawbuddy:"

type PrefsStore struct {
	rdb goredis.UniversalClient
}

var _ prefs.Store = (*PrefsStore)(nil)

func NewPrefsStore(rdb goredis.UniversalClient) *PrefsStore {
	return &PrefsStore{rdb: rdb}
}

func key(namespace string) string { return keyPrefix + namespace }

func (s *PrefsStore) Load(ctx context.Context, namespace string) (map[string]string, error) {
	values, err := s.rdb.HGetAll(ctx, key(namespace)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: hgetall %s: %v", prefs.ErrUnavailable, key(namespace), err)
	}
	return values, nil
}

// Save reemplaza el hash en una transacción (DEL + HSET).
func (s *PrefsStore) Save(ctx context.Context, namespace string, values map[string]string) error {
	k := key(namespace)
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, k)
		if len(values) > 0 {
			pipe.HSet(ctx, k, values)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save %s: %v", prefs.ErrUnavailable, k, err)
	}
	return nil
}

func (s *PrefsStore) Clear(ctx context.Context, namespace string) error {
	if err := s.rdb.Del(ctx, key(namespace)).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", prefs.ErrUnavailable, key(namespace), err)
	}
	return nil
}
