package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cartTTL = 30 * 24 * time.Hour

// Open connects a Redis client from a redis:// URL and verifies it with a
// ping.
func Open(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// NewSessionID mints an identifier for a fresh storefront session.
func NewSessionID() string {
	return uuid.NewString()
}

type redisStorage struct {
	client *redis.Client
	key    string
}

// NewRedis returns Storage keeping the cart JSON under a per-session key
// with a TTL, so an abandoned guest cart eventually expires.
func NewRedis(client *redis.Client, sessionID string) Storage {
	return &redisStorage{
		client: client,
		key:    "cart:session:" + sessionID,
	}
}

func (s *redisStorage) Load(ctx context.Context) ([]domain.CartItem, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []domain.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *redisStorage) Save(ctx context.Context, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, cartTTL).Err()
}

func (s *redisStorage) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
