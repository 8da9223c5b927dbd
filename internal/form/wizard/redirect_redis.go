package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vistoforms/internal/form/models"
)

const redirectKeyPrefix = "wizard:redirect:"

// RedisRedirectStore shares redirect requests across instances. GETDEL makes
// the take atomic, so concurrent saves observe the request at most once.
type RedisRedirectStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRedirectStore constructs a Redis-backed redirect store. Requests
// expire after ttl so an abandoned navigation cannot fire a stale save later.
func NewRedisRedirectStore(client *redis.Client, ttl time.Duration) *RedisRedirectStore {
	return &RedisRedirectStore{client: client, ttl: ttl}
}

func (s *RedisRedirectStore) Request(ctx context.Context, formID uuid.UUID, target models.Step) error {
	key := redirectKeyPrefix + formID.String()
	if err := s.client.Set(ctx, key, int(target), s.ttl).Err(); err != nil {
		return fmt.Errorf("set redirect request: %w", err)
	}
	return nil
}

func (s *RedisRedirectStore) Take(ctx context.Context, formID uuid.UUID) (*models.Step, error) {
	key := redirectKeyPrefix + formID.String()
	raw, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("take redirect request: %w", err)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("corrupt redirect request %q: %w", raw, err)
	}
	target := models.Step(n)
	if !target.Valid() {
		return nil, nil
	}
	return &target, nil
}
