package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps snapshot documents as plain string values under
// smartfood:<tenant>:<collection>. Documents never expire.
type RedisStore struct {
	client *redis.Client
}

var _ DocStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(tenantID, collection string) string {
	return fmt.Sprintf("smartfood:%s:%s", tenantID, collection)
}

func (s *RedisStore) Get(ctx context.Context, tenantID, collection string) ([]byte, bool, error) {
	doc, err := s.client.Get(ctx, s.key(tenantID, collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %s/%s: %w", tenantID, collection, err)
	}
	return doc, true, nil
}

func (s *RedisStore) Put(ctx context.Context, tenantID, collection string, doc []byte) error {
	if err := s.client.Set(ctx, s.key(tenantID, collection), doc, 0).Err(); err != nil {
		return fmt.Errorf("redis: put %s/%s: %w", tenantID, collection, err)
	}
	return nil
}
