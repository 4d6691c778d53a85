package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage persists carts keyed by session ID. Load returns an empty cart
// when nothing is stored yet.
type Storage interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisStorage keeps carts in Redis alongside the sessions that own them.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStorage) Load(ctx context.Context, sessionID string) (Cart, error) {
	payload, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return Empty(), nil
	}
	if err != nil {
		return Cart{}, fmt.Errorf("load cart: %w", err)
	}
	var c Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		return Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return c, nil
}

func (s *RedisStorage) Save(ctx context.Context, sessionID string, c Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// MemoryStorage is an in-process Storage for tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string]Cart)}
}

func (s *MemoryStorage) Load(_ context.Context, sessionID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.carts[sessionID]; ok {
		return c, nil
	}
	return Empty(), nil
}

func (s *MemoryStorage) Save(_ context.Context, sessionID string, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = c
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
